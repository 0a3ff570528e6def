package apimodels

type Response struct {
	Success bool        `json:"success"`                //результат обработки запроса
	Message string      `json:"message,omitempty"`      //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`         //данные ответа
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}
