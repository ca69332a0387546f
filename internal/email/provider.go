package email

// Provider определяет интерфейс для отправки email.
// Отправка синхронная: результат виден вызывающему коду,
// никаких fire-and-forget колбеков.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendWithTemplate отправляет email используя шаблон
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to string, resetLink string) error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	// Render рендерит шаблон с данными
	Render(templateName string, data TemplateData) (string, error)
}
