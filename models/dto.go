package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

type VisitResponse struct {
	Message       string `json:"message"`
	LastVisitDate int64  `json:"lastVisitDate"`
	FirstVisit    bool   `json:"firstVisit"`
}

type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Sort     string `form:"sort"`
	Loads    int    `form:"loads"`
}
