// Package docs Itinerary Service API.
//
// Сервис предпросмотра маршрута дня: упорядочивает запланированные места списка
// по слотам, категориям и ручному порядку и возвращает участки маршрута между
// соседними точками с расстоянием и временем в пути.
//
// Спецификация генерируется swag init в docs/swagger.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	SecurityDefinitions:
//	BearerAuth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
