package models

import (
	"strings"

	"github.com/api-sage/binary-finance/src/internal/domain"
)

type ExportHistoryRequest struct {
	Username string `json:"username" validate:"required"`
}

func (r ExportHistoryRequest) Validate() error {
	return validateStruct(ExportHistoryRequest{Username: strings.TrimSpace(r.Username)}, nil, domain.ErrNoHistory)
}

type ExportHistoryResponse struct {
	Username         string `json:"username"`
	FileName         string `json:"fileName"`
	TransactionCount int    `json:"transactionCount"`
}
