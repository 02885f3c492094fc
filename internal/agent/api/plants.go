// Методы клиента для работы с эндпоинтами /plants.
package api

import "github.com/Aditya-Angaj/plantcare/internal/shared/models"

// ListPlants возвращает все растения текущего пользователя.
//
// Сервер отдаёт плоский JSON-массив.
func (c *Client) ListPlants(authToken string) ([]models.Plant, error) {
	var resp []models.Plant
	err := c.GetJSON("/plants", &resp, authToken)
	return resp, err
}

// CreatePlant создаёт новое растение и возвращает запись с серверным id.
func (c *Client) CreatePlant(authToken string, req models.CreatePlantRequest) (models.Plant, error) {
	var resp models.Plant
	err := c.PostJSON("/plants", req, &resp, authToken)
	return resp, err
}

// UpdatePlant частично обновляет растение и возвращает свежую запись.
//
// Непереданные (nil) поля сервер не трогает.
func (c *Client) UpdatePlant(authToken, plantID string, req models.UpdatePlantRequest) (models.Plant, error) {
	var resp models.Plant
	err := c.PutJSON("/plants/"+plantID, req, &resp, authToken)
	return resp, err
}

// DeletePlant удаляет растение по id.
func (c *Client) DeletePlant(authToken, plantID string) (models.DeletePlantResponse, error) {
	var resp models.DeletePlantResponse
	err := c.DeleteJSON("/plants/"+plantID, &resp, authToken)
	return resp, err
}
