package converter

import (
	"errors"
)

// Kind identifies why a conversion was refused.
type Kind int

const (
	// KindDescriptionTooLong marks a description of MaxDescriptionLength bytes or more.
	KindDescriptionTooLong Kind = iota + 1
	// KindTooManyFields marks a field list longer than MaxFieldCount.
	KindTooManyFields
)

// String returns the name of the error kind
func (k Kind) String() string {
	switch k {
	case KindDescriptionTooLong:
		return "DescriptionTooLong"
	case KindTooManyFields:
		return "TooManyFields"
	default:
		return "Unknown"
	}
}

var (
	// ErrDescriptionTooLong is matched by errors.Is for KindDescriptionTooLong.
	ErrDescriptionTooLong = errors.New("the description exceeds the maximum length of 4096 characters")
	// ErrTooManyFields is matched by errors.Is for KindTooManyFields.
	ErrTooManyFields = errors.New("the number of fields exceeds the maximum of 25")
)

// ConvertError is returned when an embed exceeds a downstream limit.
type ConvertError struct {
	Kind Kind
}

func (e *ConvertError) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns the sentinel error of the kind.
func (e *ConvertError) Unwrap() error {
	switch e.Kind {
	case KindDescriptionTooLong:
		return ErrDescriptionTooLong
	case KindTooManyFields:
		return ErrTooManyFields
	default:
		return errors.New("unknown conversion error")
	}
}

// KindOf returns the kind of a conversion error, or 0 when err is not one.
func KindOf(err error) Kind {
	var ce *ConvertError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
