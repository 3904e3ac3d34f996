package group

// RegisterRequest represents the request to register a new group
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// GroupResponse represents the public view of a group
type GroupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
