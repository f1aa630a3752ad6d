package request

// CreateKeywordRequest is the payload accepted by POST /keywords.
type CreateKeywordRequest struct {
	Palavra       string `json:"palavra" binding:"required"`
	DiasExpiracao int    `json:"diasExpiracao" binding:"required"`
}

// UpdateKeywordAtivaRequest toggles a keyword's participation in matching.
type UpdateKeywordAtivaRequest struct {
	Ativa *bool `json:"ativa" binding:"required"`
}
