package dto

type SaveProgressRequest struct {
	CourseID  string `json:"courseId" validate:"required"`
	PageIndex *int   `json:"pageIndex" validate:"required,gte=0"`
}

func (r *SaveProgressRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ProgressResponse struct {
	HighestPageIndex int `json:"highestPageIndex"`
}
