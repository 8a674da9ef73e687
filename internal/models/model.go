package models

// Model describes one analysis capability offered by the backend. ID is the
// value sent back in the model query parameter.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FindModel returns the model with the given id, or nil.
func FindModel(list []Model, id string) *Model {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
