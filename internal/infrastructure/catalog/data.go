package catalog

import (
	"time"

	"carmarket-backend/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// InternalSeed is the catalog a fresh listings table is filled with.
func InternalSeed() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Title: "BMW 320d xDrive M Sport Touring", Brand: "BMW", Model: "3er",
			Year: 2022, Price: 47900, Mileage: 18500, Power: 190,
			FuelType: domain.FuelDiesel, Transmission: domain.TransmissionAutomatik,
			Description: "BMW 320d xDrive M Sport Touring in Mineralgrau metallic. Vollausstattung mit M Sportpaket, Harman Kardon Soundsystem, Panoramadach und Head-Up Display. Scheckheftgepflegt, unfallfrei, Nichtraucherfahrzeug. Garantie bis 03/2025.",
			Location: "München", SellerType: domain.SellerHaendler, SellerName: "BMW Autohaus Müller GmbH", SellerPhone: "+49 89 123456789", SellerID: "seller1",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1555215695-3004980ad54e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1520050206274-a1ae44613e6d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"M Sportpaket", "xDrive Allrad", "Harman Kardon Sound", "Panoramadach", "Head-Up Display", "LED-Scheinwerfer", "Navigationssystem Professional", "Sitzheizung", "Lederausstattung Dakota", "Parksensoren vorn/hinten"},
			CreatedAt: ts("2024-01-15T10:30:00Z"), UpdatedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID: "2", Title: "Mercedes-Benz C 220 d AMG Line 4MATIC", Brand: "Mercedes-Benz", Model: "C-Klasse",
			Year: 2023, Price: 52800, Mileage: 12000, Power: 200,
			FuelType: domain.FuelDiesel, Transmission: domain.TransmissionAutomatik,
			Description: "Mercedes-Benz C 220 d AMG Line 4MATIC in Obsidianschwarz metallic. Neuestes MBUX System, Multibeam LED, Burmester Surround Sound. Fahrzeug ist wie neu, alle Services bei Mercedes durchgeführt. Garantie bis 2026.",
			Location: "Hamburg", SellerType: domain.SellerHaendler, SellerName: "Mercedes-Benz Zentrum Hamburg", SellerPhone: "+49 40 987654321", SellerID: "seller3",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1617814076668-8dfc6fe159ed?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"AMG Line Exterieur", "4MATIC Allrad", "MBUX Multimedia", "Multibeam LED", "Burmester Surround Sound", "Panorama-Schiebedach", "Ambientebeleuchtung", "Rückfahrkamera", "Totwinkel-Assistent", "Aktiver Park-Assistent"},
			CreatedAt: ts("2024-01-10T14:20:00Z"), UpdatedAt: ts("2024-01-10T14:20:00Z"),
		},
		{
			ID: "3", Title: "Volkswagen Golf 8 GTI Performance", Brand: "Volkswagen", Model: "Golf",
			Year: 2023, Price: 44900, Mileage: 8500, Power: 265,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionManuell,
			Description: "VW Golf 8 GTI Performance in Tornado Rot. 6-Gang Schaltgetriebe, DCC Fahrwerk, Akrapovic Sportauspuff ab Werk. Fahrzeug ist in Top-Zustand, Erstbesitz, alle Wartungen bei VW. Performance Paket mit 265 PS.",
			Location: "Berlin", SellerType: domain.SellerPrivat, SellerName: "Thomas Müller", SellerPhone: "+49 30 123987456", SellerID: "seller2",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Performance Paket", "DCC Fahrwerk", "Akrapovic Sportauspuff", "Digital Cockpit Pro", "Harman/Kardon Soundsystem", "IQ.LIGHT Matrix LED", "Keyless Access", "Climatronic 3-Zonen", "App-Connect", "Rückfahrkamera"},
			CreatedAt: ts("2024-01-05T09:15:00Z"), UpdatedAt: ts("2024-01-05T09:15:00Z"),
		},
		{
			ID: "4", Title: "Audi A4 Avant 45 TFSI quattro S line", Brand: "Audi", Model: "A4",
			Year: 2022, Price: 49900, Mileage: 22000, Power: 265,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionAutomatik,
			Description: "Audi A4 Avant 45 TFSI quattro S line in Navarrablau metallic. Mild-Hybrid System, S tronic Getriebe, Virtual Cockpit plus. Fahrzeug ist gepflegt und technisch einwandfrei. Alle Services bei Audi durchgeführt.",
			Location: "Köln", SellerType: domain.SellerHaendler, SellerName: "Audi Zentrum Köln", SellerPhone: "+49 221 555123789", SellerID: "seller4",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"S line Exterieur", "quattro Allrad", "S tronic 7-Gang", "Virtual Cockpit plus", "MMI Navigation plus", "Matrix LED Scheinwerfer", "Bang & Olufsen Sound", "Panorama-Glasdach", "Assistenzpaket Tour", "Komfortsitze vorn"},
			CreatedAt: ts("2023-12-28T16:45:00Z"), UpdatedAt: ts("2023-12-28T16:45:00Z"),
		},
		{
			ID: "5", Title: "Tesla Model 3 Performance", Brand: "Tesla", Model: "Model 3",
			Year: 2023, Price: 59900, Mileage: 15000, Power: 513,
			FuelType: domain.FuelElektro, Transmission: domain.TransmissionAutomatik,
			Description: "Tesla Model 3 Performance in Perlweiß Multi-Coat. Allradantrieb, 0-100 km/h in 3,3s, Reichweite bis 547 km. Enhanced Autopilot, Premium Connectivity, 20\" Überturbine Felgen. Fahrzeug ist unfallfrei und technisch perfekt.",
			Location: "Frankfurt am Main", SellerType: domain.SellerPrivat, SellerName: "Lisa Schmidt", SellerPhone: "+49 69 777888999", SellerID: "seller5",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1551952238-2315a31e1f29?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Performance Upgrade", "Enhanced Autopilot", "Premium Connectivity", "20\" Überturbine Felgen", "Glasdach", "Premium Audio", "Supercharging", "Over-the-Air Updates", "Sentry Mode", "Mobile Connector"},
			CreatedAt: ts("2023-12-20T11:30:00Z"), UpdatedAt: ts("2023-12-20T11:30:00Z"),
		},
		{
			ID: "6", Title: "Porsche 911 Carrera S Cabriolet", Brand: "Porsche", Model: "911",
			Year: 2021, Price: 139900, Mileage: 12500, Power: 450,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionAutomatik,
			Description: "Porsche 911 Carrera S Cabriolet in Carrara Weiß metallic. PDK Getriebe, Sport Chrono Paket, BOSE Surround Sound. Fahrzeug ist in Sammlerqualität, alle Services bei Porsche. Soft-Top Verdeck, 20/21\" Carrera S Räder.",
			Location: "Stuttgart", SellerType: domain.SellerHaendler, SellerName: "Porsche Zentrum Stuttgart", SellerPhone: "+49 711 456789123", SellerID: "seller6",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"PDK 8-Gang Doppelkupplung", "Sport Chrono Paket", "BOSE Surround Sound", "20/21\" Carrera S Räder", "Soft-Top Verdeck", "Porsche Communication Management", "LED Matrix Hauptscheinwerfer", "Sportabgasanlage", "Porsche Active Suspension Management", "Leder Vollausstattung"},
			CreatedAt: ts("2023-12-15T13:20:00Z"), UpdatedAt: ts("2023-12-15T13:20:00Z"),
		},
		{
			ID: "7", Title: "Ford Mustang Mach-E GT", Brand: "Ford", Model: "Mustang Mach-E",
			Year: 2022, Price: 67900, Mileage: 8900, Power: 487,
			FuelType: domain.FuelElektro, Transmission: domain.TransmissionAutomatik,
			Description: "Ford Mustang Mach-E GT in Grabber Blue metallic. Allradantrieb, 0-100 km/h in 3,7s, Reichweite bis 490 km. MagneRide Dämpfer, B&O Sound System, 20\" Brembo Bremsen. Fahrzeug ist neuwertig und vollständig.",
			Location: "Düsseldorf", SellerType: domain.SellerHaendler, SellerName: "Ford Autohaus Rhein", SellerPhone: "+49 211 333444555", SellerID: "seller7",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1551952238-2315a31e1f29?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"GT Performance Paket", "MagneRide Dämpfer", "B&O Sound System", "20\" Brembo Bremsen", "Panorama Glasdach", "SYNC 4A Infotainment", "Ford Co-Pilot360", "Wireless Charging Pad", "Hands-Free Liftgate", "Ambient Lighting"},
			CreatedAt: ts("2023-12-10T15:45:00Z"), UpdatedAt: ts("2023-12-10T15:45:00Z"),
		},
		{
			ID: "8", Title: "Toyota GR Supra 3.0", Brand: "Toyota", Model: "Supra",
			Year: 2023, Price: 72900, Mileage: 3500, Power: 387,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionAutomatik,
			Description: "Toyota GR Supra 3.0 in Storm Gray metallic. 8-Gang Automatik, adaptives Fahrwerk, JBL Premium Audio. Fahrzeug ist praktisch neu, alle Optionen ab Werk. Limitierte A91-CF Edition mit Carbon-Elementen.",
			Location: "Nürnberg", SellerType: domain.SellerPrivat, SellerName: "Michael Weber", SellerPhone: "+49 911 666777888", SellerID: "seller8",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"A91-CF Edition", "8-Gang Automatik", "Adaptives Fahrwerk", "JBL Premium Audio", "Carbon Fiber Elemente", "Launch Control", "Track Mode", "Brembo Bremsen", "Michelin Pilot Sport 4S", "Alcantara Innenausstattung"},
			CreatedAt: ts("2023-12-05T10:15:00Z"), UpdatedAt: ts("2023-12-05T10:15:00Z"),
		},
		{
			ID: "9", Title: "Hyundai IONIQ 5 Lounge AWD", Brand: "Hyundai", Model: "IONIQ 5",
			Year: 2023, Price: 54900, Mileage: 6800, Power: 325,
			FuelType: domain.FuelElektro, Transmission: domain.TransmissionAutomatik,
			Description: "Hyundai IONIQ 5 Lounge AWD in Cyber Gray metallic. 77,4 kWh Batterie, Reichweite bis 481 km, 800V Schnellladetechnik. Vehicle-to-Load Funktion, Bose Premium Sound, Panoramadach. Fahrzeug ist wie neu.",
			Location: "Leipzig", SellerType: domain.SellerHaendler, SellerName: "Hyundai Autohaus Leipzig", SellerPhone: "+49 341 888999000", SellerID: "seller9",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1560958089-b8a1929cea89?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1551952238-2315a31e1f29?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Lounge Ausstattung", "Allradantrieb", "800V Schnellladetechnik", "Vehicle-to-Load", "Bose Premium Sound", "Panorama Glasdach", "20\" Alufelgen", "Digitales Cockpit", "Wireless Charging", "Highway Driving Assist 2"},
			CreatedAt: ts("2023-11-30T12:30:00Z"), UpdatedAt: ts("2023-11-30T12:30:00Z"),
		},
		{
			ID: "10", Title: "Volvo XC90 T8 Inscription", Brand: "Volvo", Model: "XC90",
			Year: 2022, Price: 79900, Mileage: 19500, Power: 455,
			FuelType: domain.FuelHybrid, Transmission: domain.TransmissionAutomatik,
			Description: "Volvo XC90 T8 Inscription in Crystal White Pearl. Plug-in Hybrid, 7-Sitzer, Luftfederung, Bowers & Wilkins Sound. Fahrzeug ist gepflegt und vollständig ausgestattet. Alle Services bei Volvo durchgeführt.",
			Location: "Dresden", SellerType: domain.SellerHaendler, SellerName: "Volvo Autohaus Dresden", SellerPhone: "+49 351 111222333", SellerID: "seller10",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1606152421802-db97b9c7a11b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Inscription Ausstattung", "T8 Plug-in Hybrid", "7-Sitzer Konfiguration", "Luftfederung", "Bowers & Wilkins Sound", "Panorama Glasdach", "Pilot Assist", "Massage Sitze", "21\" Alufelgen", "Kristall Schaltknauf"},
			CreatedAt: ts("2023-11-25T14:45:00Z"), UpdatedAt: ts("2023-11-25T14:45:00Z"),
		},
	}
}

func mobileDeListings() []domain.Listing {
	return []domain.Listing{
		{
			ID: "mobile-1", Title: "Porsche 911 Carrera S", Brand: "Porsche", Model: "911",
			Year: 2021, Price: 129900, Mileage: 15000, Power: 450,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionAutomatik,
			Description: "Porsche 911 Carrera S in ausgezeichnetem Zustand. Sportabgasanlage, Sportchrono-Paket, LED-Matrix-Scheinwerfer.",
			Location: "Stuttgart", SellerType: domain.SellerHaendler, SellerName: "Premium Sports Cars GmbH", SellerPhone: "+49123456789",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1580274455191-1c62238fa333?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1503376780353-7e6692767b70?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Sport Chrono Paket", "Sportabgasanlage", "LED-Matrix", "Sportsitze Plus", "BOSE Soundsystem"},
			Source: domain.OriginMobileDe,
			CreatedAt: ts("2023-06-10T08:30:00Z"), UpdatedAt: ts("2023-06-10T08:30:00Z"),
		},
		{
			ID: "mobile-2", Title: "Audi RS6 Avant", Brand: "Audi", Model: "RS6",
			Year: 2022, Price: 139800, Mileage: 12000, Power: 600,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionAutomatik,
			Description: "Audi RS6 Avant mit umfangreicher Ausstattung. Carbon-Paket, Bang & Olufsen Sound, Panoramadach.",
			Location: "München", SellerType: domain.SellerHaendler, SellerName: "Audi Zentrum München", SellerPhone: "+49987654321",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606220589611-4f29769271a0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Carbon-Paket", "Bang & Olufsen", "Panoramadach", "Dynamik-Paket plus", "Head-up-Display"},
			Source: domain.OriginMobileDe,
			CreatedAt: ts("2023-06-15T10:15:00Z"), UpdatedAt: ts("2023-06-15T10:15:00Z"),
		},
	}
}

func kleinanzeigenListings() []domain.Listing {
	return []domain.Listing{
		{
			ID: "kleinanzeigen-1", Title: "VW Golf 7 GTI Performance", Brand: "Volkswagen", Model: "Golf",
			Year: 2019, Price: 28500, Mileage: 45000, Power: 245,
			FuelType: domain.FuelBenzin, Transmission: domain.TransmissionManuell,
			Description: "VW Golf 7 GTI Performance mit 6-Gang-Schaltgetriebe. Scheckheftgepflegt, unfallfrei, Nichtraucherfahrzeug.",
			Location: "Hamburg", SellerType: domain.SellerPrivat, SellerName: "Michael Schmidt", SellerPhone: "+49123987456",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1624551349356-9c1f1aaeb344?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1624551349356-9c1f1aaeb344?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"Navigationssystem", "Sitzheizung", "Einparkhilfe", "Klimaautomatik", "Bluetooth"},
			Source: domain.OriginKleinanzeigen,
			CreatedAt: ts("2023-06-20T14:45:00Z"), UpdatedAt: ts("2023-06-20T14:45:00Z"),
		},
		{
			ID: "kleinanzeigen-2", Title: "BMW X3 xDrive20d", Brand: "BMW", Model: "X3",
			Year: 2020, Price: 42900, Mileage: 35000, Power: 190,
			FuelType: domain.FuelDiesel, Transmission: domain.TransmissionAutomatik,
			Description: "BMW X3 xDrive20d mit M-Sportpaket. Sehr gepflegter Zustand, alle Inspektionen bei BMW durchgeführt.",
			Location: "Berlin", SellerType: domain.SellerPrivat, SellerName: "Julia Weber", SellerPhone: "+49777888999",
			Images: domain.StringList{
				"https://images.unsplash.com/photo-1549399542-7e3f8b79c341?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1549399542-7e3f8b79c341?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Features: domain.StringList{"M-Sportpaket", "Lederausstattung", "Panoramadach", "Navigationssystem Professional", "Rückfahrkamera"},
			Source: domain.OriginKleinanzeigen,
			CreatedAt: ts("2023-06-25T09:30:00Z"), UpdatedAt: ts("2023-06-25T09:30:00Z"),
		},
	}
}
