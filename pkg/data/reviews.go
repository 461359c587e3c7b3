package data

import "virtual-product-studio/api/pkg/models"

// Reviews returns the seeded reviews keyed by product id.
func Reviews() map[string][]models.Review {
	return map[string][]models.Review{
		"mobile": {
			{
				Id:       "r1",
				UserId:   "u1",
				UserName: "Michael Chen",
				Rating:   5,
				Title:    "Best phone I have ever used",
				Comment:  "The holographic display is absolutely stunning. Battery life exceeds expectations and the camera quality is professional grade.",
				Date:     "2025-12-15",
				Verified: true,
				Helpful:  124,
			},
			{
				Id:       "r2",
				UserId:   "u2",
				UserName: "Sarah Williams",
				Rating:   4,
				Title:    "Great but pricey",
				Comment:  "Amazing features and build quality. Only downside is the premium price point, but you get what you pay for.",
				Date:     "2025-12-10",
				Verified: true,
				Helpful:  89,
			},
			{
				Id:       "r3",
				UserId:   "u3",
				UserName: "James Rodriguez",
				Rating:   5,
				Title:    "Revolutionary device",
				Comment:  "This phone has changed how I work and communicate. The 200MP camera is incredible for content creation.",
				Date:     "2025-11-28",
				Verified: true,
				Helpful:  67,
			},
		},
		"laptop": {
			{
				Id:       "r4",
				UserId:   "u4",
				UserName: "Emily Zhang",
				Rating:   5,
				Title:    "Perfect for professionals",
				Comment:  "Ultra-thin yet powerful. Runs all my design software flawlessly. The display is color-accurate and gorgeous.",
				Date:     "2025-12-20",
				Verified: true,
				Helpful:  156,
			},
			{
				Id:       "r5",
				UserId:   "u5",
				UserName: "David Park",
				Rating:   4,
				Title:    "Impressive performance",
				Comment:  "Great laptop for development work. Battery lasts all day. Would love more ports though.",
				Date:     "2025-12-05",
				Verified: true,
				Helpful:  78,
			},
		},
		"watch": {
			{
				Id:       "r6",
				UserId:   "u6",
				UserName: "Anna Thompson",
				Rating:   5,
				Title:    "Life-changing fitness tracker",
				Comment:  "The health monitoring features are incredibly accurate. It literally saved my life by detecting an irregular heartbeat.",
				Date:     "2025-12-18",
				Verified: true,
				Helpful:  234,
			},
			{
				Id:       "r7",
				UserId:   "u7",
				UserName: "Robert Kim",
				Rating:   5,
				Title:    "Best smartwatch on the market",
				Comment:  "Beautiful design, amazing battery life, and the titanium strap is worth every penny.",
				Date:     "2025-12-12",
				Verified: true,
				Helpful:  145,
			},
		},
	}
}
