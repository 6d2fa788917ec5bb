package usecase

// Notifier показывает пользователю всплывающие уведомления.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// PhotoReader асинхронно превращает загруженный файл в data URI.
// done вызывается из другой горутины ровно один раз для каждого принятого запроса.
type PhotoReader interface {
	Read(req *ReadPhotoReq, done func(*ReadPhotoRes)) (string, error)
}
