package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wingscafe/inventory/internal/imagestore"
	repo "github.com/wingscafe/inventory/internal/repo"
)

// UpdateProductPictureHandler godoc
// @Summary Replace the image of a product
// @Description Stores the uploaded file and removes the superseded one
// @Tags products
// @Accept mpfd
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file (JPG or PNG, max 10 MiB)"
// @Success 200 {object} PictureResponse
// @Failure 400 {string} string "Invalid upload"
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/picture [post]
func UpdateProductPictureHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imageStore.MaxBytes()+1<<20)
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := imageStore.Save(file, header)
	if err != nil {
		writeImageStoreError(w, err)
		return
	}

	oldURL, err := productRepo.SetImageURL(id, imageURL)
	if err != nil {
		_ = imageStore.Remove(imageURL)
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Printf("could not update image of product %d: %v", id, err)
		http.Error(w, "could not update product image", http.StatusInternalServerError)
		return
	}

	if oldURL != "" && oldURL != imageURL {
		if err := imageStore.Remove(oldURL); err != nil {
			log.Printf("could not remove superseded image %s: %v", oldURL, err)
		}
	}

	writeJSON(w, http.StatusOK, PictureResponse{
		Message:  "product image updated successfully",
		ImageURL: imageURL,
	})
}

func writeImageStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, imagestore.ErrFileTooLarge),
		errors.Is(err, imagestore.ErrInvalidFileType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("could not store image: %v", err)
		http.Error(w, "could not store image", http.StatusInternalServerError)
	}
}
