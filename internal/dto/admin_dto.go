package dto

type UpdateSubmissionStatusRequest struct {
	Status          string `json:"status"`
	AssignedAdminID *uint  `json:"assigned_admin_id,omitempty"`
}

type CreateInvitationRequest struct {
	Email string `json:"email"`
}

type InvitationResponse struct {
	Code      string `json:"code"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

type CreateVacancyRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

type CreateInquiryRequest struct {
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	Message      string `json:"message"`
	Positions    int    `json:"positions"`
}

type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	Published bool   `json:"published"`
}
