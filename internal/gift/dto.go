package gift

// CreateGiftRequest represents the request to create a gift.
// A client-supplied groupId is accepted on the wire but never used.
type CreateGiftRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	MemberID    *string `json:"memberId,omitempty"`
	GroupID     string  `json:"groupId,omitempty"`
}

// UpdateGiftRequest represents a partial gift update; nil fields are left alone
type UpdateGiftRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Purchased   *bool   `json:"purchased,omitempty"`
	MemberID    *string `json:"memberId,omitempty"`
}

// GiftResponse represents a gift on the wire
type GiftResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Purchased   bool    `json:"purchased"`
	CreatedAt   string  `json:"createdAt"`
	GroupID     string  `json:"groupId"`
	MemberID    *string `json:"memberId,omitempty"`
}

// ListResponse is the body of GET /gifts
type ListResponse struct {
	Gifts []*GiftResponse `json:"gifts"`
}

// MutationResponse is the body of create, update and toggle
type MutationResponse struct {
	Success bool          `json:"success"`
	Gift    *GiftResponse `json:"gift"`
}

// ToResponse converts a Gift model to a GiftResponse DTO
func (g *Gift) ToResponse() *GiftResponse {
	return &GiftResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		URL:         g.URL,
		Purchased:   g.Purchased,
		CreatedAt:   g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		GroupID:     g.GroupID,
		MemberID:    g.MemberID,
	}
}
