package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dinehub/restaurant-backend/storage"
	"github.com/dinehub/restaurant-backend/utils"
)

// MaxUploadSize caps a single image at 5MB.
const MaxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	errNoFileUploaded = errors.New("no file uploaded")
	errFileTooLarge   = errors.New("image size exceeds 5MB limit")
	errBadFileType    = errors.New("file type not allowed (jpg, jpeg, png, gif, webp)")
)

type UploadController struct {
	Store storage.ImageStore
}

func NewUploadController(store storage.ImageStore) *UploadController {
	return &UploadController{Store: store}
}

// UploadImage accepts one file under the multipart field "image" and
// returns {"imageUrl": <reference>}. The upload and the record create
// that later references it are independent round trips; nothing here
// ties the two together.
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errNoFileUploaded)
		return
	}

	if file.Size > MaxUploadSize {
		utils.RespondError(c, http.StatusBadRequest, errFileTooLarge)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		utils.RespondError(c, http.StatusBadRequest, errBadFileType)
		return
	}

	url, err := uc.Store.Save(c.Request.Context(), file)
	if err != nil {
		utils.ErrorLogger.Printf("Image upload failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"imageUrl": url})
}
