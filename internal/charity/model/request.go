package model

type CreateInstitutionRequest struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Location        string `json:"location" validate:"required,max=200"`
	ContactPerson   string `json:"contact_person" validate:"required"`
	ContactPhone    string `json:"contact_phone" validate:"required"`
	Email           string `json:"email" validate:"omitempty"`
	StudentCount    int    `json:"student_count" validate:"gte=0"`
	DeviceCount     int    `json:"device_count" validate:"gte=0"`
	CooperationDate string `json:"cooperation_date"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateInstitutionRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	ContactPerson *string `json:"contact_person"`
	ContactPhone  *string `json:"contact_phone"`
	Email         *string `json:"email"`
	Status        *string `json:"status"`
	StudentCount  *int    `json:"student_count" validate:"omitempty,gte=0"`
	DeviceCount   *int    `json:"device_count" validate:"omitempty,gte=0"`
	LastVisitDate *string `json:"last_visit_date"`
	Notes         *string `json:"notes" validate:"omitempty,max=1000"`
}

type CreateActivityRequest struct {
	Title         string `json:"title" validate:"required,max=100"`
	Description   string `json:"description" validate:"omitempty,max=1000"`
	Type          string `json:"type" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Location      string `json:"location" validate:"required,max=200"`
	Organizer     string `json:"organizer" validate:"required,max=200"`
	Participants  int    `json:"participants" validate:"gte=0"`
	Budget        int64  `json:"budget" validate:"gte=0"`
	InstitutionID string `json:"institution_id" validate:"omitempty,uuid"`
}

type UpdateActivityRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	Date         *string `json:"date"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	Organizer    *string `json:"organizer" validate:"omitempty,max=200"`
	Participants *int    `json:"participants" validate:"omitempty,gte=0"`
	Budget       *int64  `json:"budget" validate:"omitempty,gte=0"`
	ActualCost   *int64  `json:"actual_cost" validate:"omitempty,gte=0"`
}

type ChangeActivityStatusRequest struct {
	Status string `json:"status" validate:"required,charity_activity_status"`
}

type ActivityFilterRequest struct {
	Keyword   string `form:"keyword"`
	Type      string `form:"type"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

type InstitutionFilterRequest struct {
	Keyword  string `form:"keyword"`
	Type     string `form:"type"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
