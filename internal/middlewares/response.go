package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/models"
)

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.BaseResponse{Message: message})
}
