// @title           proconnect API
// @version         1.0
// @description     API сервиса поиска исполнителей услуг (документация Swagger).
// @contact.name    proconnect
// @contact.email   support@proconnect.dev
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "proconnect_backend/internal/app"

func main() {
	app.Run()
}
