package request

// CreateMemberRequest is the payload for registering a new member.
type CreateMemberRequest struct {
	MemberNumber string `json:"memberNumber"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	JoinDate     string `json:"joinDate"`
}
