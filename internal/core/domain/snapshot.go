package domain

// Snapshot is the complete state of the contact and note stores.
// The tag index is not part of a snapshot; restoring notes rebuilds it
// from their tags.
type Snapshot struct {
	// Contacts in store order.
	Contacts []Contact

	// Notes in ascending ID order.
	Notes []Note

	// NextNoteID is the ID the next added note will receive.
	NextNoteID int
}
