package ports

import "io"

// Payload — тело мутации create/update, непрозрачное для кэша.
// Конкретные формы (JSON, multipart с файлом) живут в слое API;
// сервисы данных передают payload в RemoteClient без интерпретации.
type Payload interface {
	// Encode — возвращает тело запроса и его Content-Type.
	Encode() (body io.Reader, contentType string, err error)
}
