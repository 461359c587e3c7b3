package data

import (
	"strings"

	"virtual-product-studio/api/pkg/models"
)

// Categories returns the catalog taxonomy. Slugs are left empty and derived
// from names when the catalog is built.
func Categories() []models.Category {
	return []models.Category{
		{
			Id:   "electronics",
			Name: "Electronics",
			DeviceTypes: []models.DeviceType{
				{Id: "mobile", Name: "Mobile Phones", Brands: brands("quantum:Quantum", "nexus:Nexus", "nova:Nova", "zenith:Zenith", "apex:Apex")},
				{Id: "laptop", Name: "Laptops", Brands: brands("novapro:NovaPro", "titan:Titan", "pulse:Pulse", "zenbook:ZenBook", "spectre:Spectre")},
				{Id: "tablet", Name: "Tablets", Brands: brands("canvas:Canvas", "slate:Slate", "prism:Prism", "pad:Pad")},
				{Id: "pc", Name: "Desktop PCs", Brands: brands("titanx:TitanX", "vortex:Vortex", "aurora:Aurora", "nexgen:NexGen")},
				{Id: "watch", Name: "Smart Watches", Brands: brands("pulse:Pulse", "fitmax:FitMax", "chronos:Chronos", "vita:Vita")},
				{Id: "camera", Name: "Cameras", Brands: brands("proshot:ProShot", "capture:Capture", "vision:Vision", "optix:Optix")},
				{Id: "tv", Name: "Smart TVs", Brands: brands("visionary:Visionary", "lumix:Lumix", "brilliance:Brilliance", "vivid:Vivid")},
				{Id: "drone", Name: "Drones", Brands: brands("skypro:SkyPro", "aero:Aero", "falcon:Falcon", "phantom:Phantom")},
				{Id: "vr", Name: "VR Headsets", Brands: brands("visionx:VisionX", "immerse:Immerse", "realm:Realm", "oasis:Oasis")},
				{Id: "audio", Name: "Audio", Brands: brands("sonic:Sonic", "bass:Bass", "harmony:Harmony", "echo:Echo")},
				{Id: "gaming", Name: "Gaming", Brands: brands("nexplay:NexPlay", "prozone:ProZone", "victrix:Victrix", "razer:Razer")},
				{Id: "accessories", Name: "Accessories", Brands: brands("techmate:TechMate", "connect:Connect", "prime:Prime", "essential:Essential")},
			},
		},
	}
}

// brands expands "id:Name" pairs.
func brands(pairs ...string) []models.Brand {
	out := make([]models.Brand, 0, len(pairs))
	for _, p := range pairs {
		if id, name, ok := strings.Cut(p, ":"); ok {
			out = append(out, models.Brand{Id: id, Name: name})
		}
	}
	return out
}

// DeviceTypeLabels maps a device-type tag to its display name.
var DeviceTypeLabels = map[models.ProductType]string{
	models.ProductTypeMobile:      "Mobile Phones",
	models.ProductTypeLaptop:      "Laptops",
	models.ProductTypeTablet:      "Tablets",
	models.ProductTypePC:          "Desktop PCs",
	models.ProductTypeWatch:       "Smart Watches",
	models.ProductTypeCamera:      "Cameras",
	models.ProductTypeTV:          "Smart TVs",
	models.ProductTypeDrone:       "Drones",
	models.ProductTypeVR:          "VR Headsets",
	models.ProductTypeAudio:       "Audio",
	models.ProductTypeGaming:      "Gaming",
	models.ProductTypeAccessories: "Accessories",
}
