package repo

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/lib/pq"
)

const (
	codeInvalidText    = "22P02"
	codeForeignKey     = "23503"
	codeCheckViolation = "23514"

	classDataException       pq.ErrorClass = "22"
	classIntegrityConstraint pq.ErrorClass = "23"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// isInvalidUUID сообщает, что идентификатор не является UUID, т.е. такой строки точно нет.
func isInvalidUUID(err error) bool {
	return err != nil && pqCode(err) == codeInvalidText
}

func isForeignKeyViolation(err error) bool {
	return err != nil && pqCode(err) == codeForeignKey
}

func isCheckViolation(err error) bool {
	return err != nil && pqCode(err) == codeCheckViolation
}

// classify помечает детерминированные ошибки данных как entities.ErrDataRejected.
// Исходная *pq.Error остаётся в цепочке для проверок по коду.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Class() {
	case classDataException, classIntegrityConstraint:
		return fmt.Errorf("%w: %w", entities.ErrDataRejected, err)
	}
	return err
}
