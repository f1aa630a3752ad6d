package request

// ListNotificationsQuery carries the pagination query parameters of the
// listing endpoints. Out-of-range values are clamped downstream instead of
// rejected; a missing cursor means "first page".
type ListNotificationsQuery struct {
	PageSize int    `form:"page_size"`
	Cursor   string `form:"cursor"`
	Days     int    `form:"days"`
}
