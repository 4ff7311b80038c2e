package response

// AppError 业务错误：Code 写入信封的 status_code，Key 是返回给客户端的消息键，
// Err 保留底层原因供日志使用，不外泄给客户端
type AppError struct {
	Code int
	Key  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Key
	}
	return e.Key + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 将底层错误包装为业务错误
func WrapError(code int, key string, err error) *AppError {
	return &AppError{
		Code: code,
		Key:  key,
		Err:  err,
	}
}
