package forum

import (
	"time"

	"carmarket-backend/internal/domain"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedPosts returns the posts a fresh board starts with.
func SeedPosts() []domain.ForumPost {
	return []domain.ForumPost{
		{
			ID:       "1",
			Title:    "Welches Auto für Fahranfänger?",
			Content:  "Ich habe gerade meinen Führerschein gemacht und suche ein zuverlässiges Auto für Fahranfänger. Budget liegt bei etwa 5.000€. Was könnt ihr empfehlen?",
			Category: "Kaufberatung", Author: "FahranfängerMax", AuthorID: "user1",
			CreatedAt: at("2023-06-15T10:30:00Z"),
			Comments: []domain.ForumComment{
				{ID: "c1", AuthorID: "user2", Author: "AutoExperte", Content: "Ich würde dir einen VW Polo oder einen Toyota Yaris empfehlen. Beide sind zuverlässig, sparsam und haben günstige Versicherungseinstufungen.", CreatedAt: at("2023-06-15T11:15:00Z"), LikedBy: []string{"user1", "user3"}},
				{ID: "c2", AuthorID: "user3", Author: "MechanikMeister", Content: "Schau dir auch den Opel Corsa an. Günstig in der Anschaffung und Reparaturen sind nicht so teuer.", CreatedAt: at("2023-06-15T12:45:00Z"), LikedBy: []string{}},
			},
			LikedBy:      []string{"user2", "user4"},
			CommentCount: 2,
		},
		{
			ID:       "2",
			Title:    "Erfahrungen mit Elektroautos im Winter?",
			Content:  "Ich überlege, mir ein Elektroauto zuzulegen, mache mir aber Sorgen um die Reichweite im Winter. Hat jemand Erfahrungen damit, wie stark die Reichweite bei Kälte abnimmt?",
			Category: "Elektromobilität", Author: "StromFahrer", AuthorID: "user5",
			CreatedAt: at("2023-06-10T14:20:00Z"),
			Comments: []domain.ForumComment{
				{ID: "c3", AuthorID: "user6", Author: "TeslaFan", Content: "Ich fahre seit 2 Jahren ein Model 3 und kann sagen, dass die Reichweite im Winter etwa 20-30% geringer ist. Das Vorheizen während des Ladens hilft aber sehr.", CreatedAt: at("2023-06-10T15:10:00Z"), LikedBy: []string{"user5"}},
			},
			LikedBy:      []string{"user6", "user7", "user8"},
			CommentCount: 1,
		},
		{
			ID:       "3",
			Title:    "Tipps für Getriebeölwechsel",
			Content:  "Mein Automatikgetriebe macht komische Geräusche beim Schalten. Ich denke, es ist Zeit für einen Getriebeölwechsel. Hat jemand Tipps, worauf ich achten sollte?",
			Category: "Technik", Author: "SchrauberPro", AuthorID: "user9",
			CreatedAt:    at("2023-06-05T09:15:00Z"),
			Comments:     []domain.ForumComment{},
			LikedBy:      []string{"user10"},
			CommentCount: 0,
		},
		{
			ID:       "4",
			Title:    "Oldtimer als Wertanlage?",
			Content:  "Ich interessiere mich für einen Mercedes W123 als Wertanlage. Lohnt sich das noch oder ist der Markt überhitzt?",
			Category: "Oldtimer", Author: "KlassikerFan", AuthorID: "user11",
			CreatedAt: at("2023-06-01T16:45:00Z"),
			Comments: []domain.ForumComment{
				{ID: "c4", AuthorID: "user12", Author: "OldtimerSammler", Content: "Der W123 ist definitiv eine gute Wahl, aber achte auf den Zustand. Nur wirklich gut erhaltene oder fachgerecht restaurierte Fahrzeuge steigen im Wert.", CreatedAt: at("2023-06-01T17:30:00Z"), LikedBy: []string{"user11"}},
				{ID: "c5", AuthorID: "user13", Author: "MercedesFan", Content: "Ich habe selbst einen W123 und die Ersatzteilversorgung ist noch sehr gut. Das ist wichtig für den Werterhalt.", CreatedAt: at("2023-06-01T18:15:00Z"), LikedBy: []string{}},
			},
			LikedBy:      []string{"user12", "user13", "user14", "user15"},
			CommentCount: 2,
		},
		{
			ID:       "5",
			Title:    "Erfahrungen mit Chiptuning?",
			Content:  "Hat jemand Erfahrungen mit Chiptuning bei einem Golf 7 GTI? Lohnt sich die Investition und gibt es Probleme mit der Garantie?",
			Category: "Tuning", Author: "TuningFreak", AuthorID: "user16",
			CreatedAt: at("2023-05-25T11:30:00Z"),
			Comments: []domain.ForumComment{
				{ID: "c6", AuthorID: "user17", Author: "GTIFahrer", Content: "Ich habe meinen GTI chippen lassen und bin sehr zufrieden. +50 PS für relativ wenig Geld. Aber ja, die Garantie ist damit weg.", CreatedAt: at("2023-05-25T12:20:00Z"), LikedBy: []string{"user16"}},
			},
			LikedBy:      []string{"user17", "user18"},
			CommentCount: 1,
		},
	}
}
