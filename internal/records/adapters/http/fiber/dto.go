package fiber

// CreateRecordRequest represents record creation payload
// @Description Record creation DTO
type CreateRecordRequest struct {
	Date       string `json:"date" example:"2023-06-01"`
	Region     string `json:"region" example:"Nairobi"`
	Disease    string `json:"disease" example:"Malaria"`
	AgeGroup   string `json:"ageGroup" example:"0-14"`
	Gender     string `json:"gender" example:"male"`
	Cases      int64  `json:"cases" example:"20"`
	Recoveries int64  `json:"recoveries" example:"15"`
	Deaths     int64  `json:"deaths" example:"1"`
}

type CreateRecordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateRecordsRequest struct {
	Records []CreateRecordRequest `json:"records"`
}

type BulkCreateRecordsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message" example:"invalid record: recoveries + deaths exceed cases"`
}
