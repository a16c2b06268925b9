package errs

import "fmt"

type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	UnauthorizedCode    Code = 403
	NotFoundCode        Code = 404
	InternalErrorCode   Code = 500
	InvalidArgumentCode Code = 460
	NetworkErrorCode    Code = 503
)

// ErrStrMap 各錯誤碼對應的預設訊息
// 後端有回傳message就優先使用後端訊息
var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "authentication required",
	UnauthorizedCode:    "permission denied",
	NotFoundCode:        "resource not found",
	InternalErrorCode:   "internal error",
	InvalidArgumentCode: "invalid argument",
	NetworkErrorCode:    "unable to connect to server",
}

// AppError 帶錯誤碼的error
// Code用來決定UI要顯示哪種狀態 (not found / 驗證錯誤 / 網路錯誤)
type AppError struct {
	Code    Code
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func New(code Code, message string) *AppError {
	if message == "" {
		message = ErrStrMap[code]
	}
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// CodeOf 取得error的錯誤碼
// 非AppError一律視為InternalErrorCode
func CodeOf(err error) Code {
	if err == nil {
		return 0
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return InternalErrorCode
}

// IsCode 檢查error是否為指定錯誤碼
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
