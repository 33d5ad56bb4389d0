package messages

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

// SeedState returns the threads a fresh inbox starts with.
func SeedState() State {
	conv1 := []domain.Message{
		{ID: "msg1", SenderID: Self, ReceiverID: "AutoExperte", Content: "Hallo, ich habe eine Frage zu deinem Kommentar über Fahranfängerautos. Würdest du eher den Polo oder den Yaris empfehlen?", Timestamp: at("2023-06-15T13:10:00Z"), Read: true},
		{ID: "msg2", SenderID: "AutoExperte", ReceiverID: Self, Content: "Hallo! Beide sind gut, aber der Yaris ist etwas zuverlässiger und günstiger im Unterhalt. Der Polo hat dafür mehr Ausstattung für das Geld.", Timestamp: at("2023-06-15T13:25:00Z"), Read: true},
		{ID: "msg3", SenderID: "AutoExperte", ReceiverID: Self, Content: "Kein Problem, melde dich wenn du weitere Fragen hast!", Timestamp: at("2023-06-15T14:30:00Z")},
	}
	conv2 := []domain.Message{
		{ID: "msg4", SenderID: Self, ReceiverID: "TeslaFan", Content: "Hi, ich interessiere mich für ein Tesla Model 3. Kannst du mir mehr über die Reichweite im Alltag erzählen?", Timestamp: at("2023-06-12T08:15:00Z"), Read: true},
		{ID: "msg5", SenderID: "TeslaFan", ReceiverID: Self, Content: "Klar! Ich komme mit meinem Long Range im Sommer etwa 450km weit, im Winter eher 350km. Aber das Supercharger-Netzwerk ist super, also mache ich mir nie Sorgen.", Timestamp: at("2023-06-12T08:30:00Z"), Read: true},
		{ID: "msg6", SenderID: Self, ReceiverID: "TeslaFan", Content: "Danke für die Infos, das hilft mir sehr weiter!", Timestamp: at("2023-06-12T09:45:00Z"), Read: true},
	}
	last1, last2 := conv1[2], conv2[2]
	return State{
		Conversations: []domain.Conversation{
			{ID: "conv1", ParticipantIDs: []string{Self, "AutoExperte"}, LastMessage: &last1, UnreadCount: 1},
			{ID: "conv2", ParticipantIDs: []string{Self, "TeslaFan"}, LastMessage: &last2},
		},
		Messages: map[string][]domain.Message{"conv1": conv1, "conv2": conv2},
	}
}
