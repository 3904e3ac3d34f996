package member

// CreateMemberRequest represents the request to add a person to the group
type CreateMemberRequest struct {
	Name string `json:"name"`
}

// MemberResponse represents a roster entry
type MemberResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	JoinedAt string `json:"joinedAt"`
}

// ListResponse is the body of GET /members
type ListResponse struct {
	Members []*MemberResponse `json:"members"`
}

// CreateResponse is the body of POST /members
type CreateResponse struct {
	Success bool            `json:"success"`
	Member  *MemberResponse `json:"member"`
}

// ToResponse converts a Membership to a MemberResponse DTO
func (m *Membership) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     m.User.Name,
		JoinedAt: m.JoinedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
