package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
)

// signatureService produces HMAC-SHA256 signatures keyed by a process-wide
// secret. The secret is loaded once at startup and immutable for the process
// lifetime; there is no key versioning, so rotating it invalidates every
// previously issued signature.
type signatureService struct {
	secret []byte
}

// NewSignatureService creates a new SignatureSvcFacade. It fails when the
// secret is empty.
func NewSignatureService(secret string) (portssvc.SignatureSvcFacade, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: signature secret must not be empty", apperrors.ErrValidation)
	}
	return &signatureService{secret: []byte(secret)}, nil
}

// Ensure signatureService implements the portssvc.SignatureSvcFacade interface
var _ portssvc.SignatureSvcFacade = (*signatureService)(nil)

// Generate computes an HMAC-SHA256 over "{userID}|{data}" and returns it hex
// encoded. The user identity participates in the MAC input rather than in the
// data payload, which is why the transaction payload omits its creator field.
func (s *signatureService) Generate(data, userID string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("%w: signature data must not be empty", apperrors.ErrValidation)
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(userID + integrity.Separator + data))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Validate regenerates the signature for (data, userID) and compares it with
// the supplied one, case-insensitively.
func (s *signatureService) Validate(data, userID, signature string) (bool, error) {
	if data == "" {
		return false, fmt.Errorf("%w: signature data must not be empty", apperrors.ErrValidation)
	}
	if signature == "" {
		return false, fmt.Errorf("%w: signature must not be empty", apperrors.ErrValidation)
	}
	expected, err := s.Generate(data, userID)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))), nil
}

// SignTransaction signs the transaction's canonical payload keyed by its creator.
func (s *signatureService) SignTransaction(txn domain.Transaction) (string, error) {
	return s.Generate(integrity.TransactionSignaturePayload(txn), txn.CreatedBy)
}

// ValidateTransaction verifies the transaction's stored signature.
func (s *signatureService) ValidateTransaction(txn domain.Transaction) (bool, error) {
	return s.Validate(integrity.TransactionSignaturePayload(txn), txn.CreatedBy, txn.DigitalSignature)
}

// SignAuditEntry signs the audit entry's canonical payload keyed by the acting user.
func (s *signatureService) SignAuditEntry(entry domain.AuditEntry) (string, error) {
	return s.Generate(integrity.AuditEntrySignaturePayload(entry), entry.UserID)
}

// ValidateAuditEntry verifies the audit entry's stored signature.
func (s *signatureService) ValidateAuditEntry(entry domain.AuditEntry) (bool, error) {
	return s.Validate(integrity.AuditEntrySignaturePayload(entry), entry.UserID, entry.DigitalSignature)
}
