package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// CSS module transform
	CSSInfo            Code = 1000
	CSSEmptyClassName  Code = 1001
	CSSMalformedTarget Code = 1002

	// I/O (driver layer)
	IOLoadFileError Code = 9001
)

func (c Code) String() string {
	switch {
	case c == UnknownCode:
		return "UNKNOWN"
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("CSS%04d", uint16(c))
	case c >= 9000:
		return fmt.Sprintf("IO%04d", uint16(c))
	}
	return fmt.Sprintf("E%04d", uint16(c))
}
