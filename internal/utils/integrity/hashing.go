package integrity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
)

// canonicalTimeFormat is the timestamp encoding used inside canonical strings.
const canonicalTimeFormat = time.RFC3339Nano

// NormalizeTimestamp converts t to UTC and truncates it to microsecond
// precision, the finest representation a timestamptz column preserves. Every
// timestamp must pass through here before it enters a canonical string,
// otherwise a persistence round-trip changes the serialized bytes and an
// untampered record fails verification.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Separator joins canonical fields. Values are not escaped, which means a
// field containing a literal '|' could collide with another record; the
// convention is kept as-is so hashes stored by earlier versions keep verifying.
const Separator = "|"

// ComputeHash returns the lowercase hex SHA-256 digest of the UTF-8 bytes of
// canonical. It fails when canonical is empty.
func ComputeHash(canonical string) (string, error) {
	if canonical == "" {
		return "", fmt.Errorf("%w: canonical string must not be empty", apperrors.ErrValidation)
	}
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:]), nil
}

// VerifyHash recomputes the hash of canonical and compares it to expected,
// case-insensitively. A failed recomputation counts as a mismatch.
func VerifyHash(canonical, expected string) bool {
	if expected == "" {
		return false
	}
	computed, err := ComputeHash(canonical)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToLower(expected))) == 1
}

// TransactionCanonical builds the canonical string a transaction is hashed
// over: amount|date|type-code|bankAccountID|accountingAccountID|createdBy.
// The field order and encoding are fixed; consumers depend on byte-for-byte
// stability of this format.
func TransactionCanonical(txn domain.Transaction) string {
	return strings.Join([]string{
		txn.Amount.StringFixed(2),
		txn.TransactionDate.Format(canonicalTimeFormat),
		fmt.Sprintf("%d", txn.TransactionType.CanonicalCode()),
		txn.BankAccountID,
		txn.AccountingAccountID,
		txn.CreatedBy,
	}, Separator)
}

// TransactionSignaturePayload builds the data string a transaction is signed
// over. Unlike the hash canonical it omits CreatedBy: the creator identity is
// folded into the HMAC via the signer's userID parameter instead of appearing
// as a plain field.
func TransactionSignaturePayload(txn domain.Transaction) string {
	return strings.Join([]string{
		txn.Amount.StringFixed(2),
		txn.TransactionDate.Format(canonicalTimeFormat),
		fmt.Sprintf("%d", txn.TransactionType.CanonicalCode()),
		txn.BankAccountID,
		txn.AccountingAccountID,
	}, Separator)
}

// AuditEntryCanonical builds the canonical string an audit entry is hashed
// over: userID|action|entityType|entityID|timestamp|prev-or-empty|new-or-empty.
func AuditEntryCanonical(entry domain.AuditEntry) string {
	return strings.Join([]string{
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Timestamp.Format(canonicalTimeFormat),
		stringOrEmpty(entry.PreviousValue),
		stringOrEmpty(entry.NewValue),
	}, Separator)
}

// AuditEntrySignaturePayload builds the data string an audit entry is signed
// over: action|entityType|entityID|timestamp.
func AuditEntrySignaturePayload(entry domain.AuditEntry) string {
	return strings.Join([]string{
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Timestamp.Format(canonicalTimeFormat),
	}, Separator)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
