package absence

type CreateAbsenceRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type DecisionRequest struct {
	Comments string `json:"comments" binding:"max=1000"`
}

type ListFilter struct {
	Status string `form:"status"`
}

type AbsenceResponse struct {
	ID            string  `json:"id"`
	RequesterID   string  `json:"requesterId"`
	RequesterName string  `json:"requesterName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApproverID    *string `json:"approverId,omitempty"`
	ApproverName  *string `json:"approverName,omitempty"`
	RequestedAt   string  `json:"requestedAt"`
	ApprovedAt    *string `json:"approvedAt,omitempty"`
	Comments      *string `json:"comments,omitempty"`
}
