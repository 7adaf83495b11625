package models

import "github.com/google/uuid"

// Participant represents a person who shares expenses in the ledger.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// Name is the display name of the participant. Never empty.
	Name string `json:"name"`

	// TransferInfo is free-text payment details (bank alias, account number, etc.)
	// shown next to settlements where this participant is the recipient.
	TransferInfo string `json:"transferInfo,omitempty"`
}

// NewParticipant creates a participant with a freshly generated ID.
func NewParticipant(name string) Participant {
	return Participant{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// ParticipantIndex returns a lookup of participants by ID.
func ParticipantIndex(participants []Participant) map[string]Participant {
	index := make(map[string]Participant, len(participants))
	for _, p := range participants {
		index[p.ID] = p
	}
	return index
}
