package models

// Persistence is either Unsaved or Saved(id). The id decides whether the next
// save is a create or an update.
type Persistence struct {
	Saved bool  `json:"saved"`
	ID    int64 `json:"id,omitempty"`
}

func Unsaved() Persistence {
	return Persistence{}
}

func SavedAs(id int64) Persistence {
	return Persistence{Saved: true, ID: id}
}

func (p Persistence) RecordID() (int64, bool) {
	return p.ID, p.Saved
}
