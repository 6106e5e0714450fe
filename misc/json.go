package misc

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

func BindJSON(c *gin.Context, v interface{}) error {
	body := c.Request.Body
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func StatusOK(id string) gin.H {
	if id == "" {
		return gin.H{"status": "success"}
	}
	return gin.H{"status": "success", "id": id}
}

func StatusErr(msg string) gin.H {
	return gin.H{"status": "error", "msg": msg}
}
