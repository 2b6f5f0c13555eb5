package controller

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrandrade/datastore-gateway/entity"
	"github.com/jrandrade/datastore-gateway/utils"
)

// ListBuckets godoc
// @Summary  List all buckets
// @Tags     buckets
// @Produce  json
// @Success  200 {array} entity.BucketInfo
// @Failure  500 {object} map[string]string
// @Router   /buckets [get]
func (ctrl *Controller) ListBuckets(c *gin.Context) {
	ctx := c.Request.Context()

	buckets, err := ctrl.Infra.ObjectStore.ListBuckets(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to list buckets")
		utils.JSON500Details(c, "Failed to list buckets", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Listed %d buckets", len(buckets))
	utils.JSON200(c, buckets)
}

// ListBucketObjects godoc
// @Summary  List the objects of one bucket
// @Tags     buckets
// @Produce  json
// @Param    bucketName path string true "bucket name"
// @Success  200 {array} entity.ObjectInfo
// @Failure  500 {object} map[string]string
// @Router   /buckets/{bucketName} [get]
func (ctrl *Controller) ListBucketObjects(c *gin.Context) {
	ctx := c.Request.Context()
	bucketName := c.Param("bucketName")

	objects, err := ctrl.Infra.ObjectStore.ListObjects(ctx, bucketName)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to list objects of %s", bucketName)
		utils.JSON500Details(c, "Failed to list bucket objects", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Listed %d objects in %s", len(objects), bucketName)
	utils.JSON200(c, objects)
}

// UploadObject godoc
// @Summary  Upload one file to a bucket
// @Tags     buckets
// @Accept   multipart/form-data
// @Produce  json
// @Param    bucketName path     string true  "bucket name"
// @Param    file       formData file   true  "file to store"
// @Param    fileName   formData string false "object key override"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /buckets/{bucketName}/upload [post]
func (ctrl *Controller) UploadObject(c *gin.Context) {
	ctx := c.Request.Context()
	bucketName := c.Param("bucketName")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Bucket] Upload without usable file field: %v", err)
		utils.JSON400(c, "no file provided")
		return
	}

	// Size gate before any store call; the route middleware additionally
	// bounds the raw body.
	maxBytes := ctrl.Config.EnvConfig.Upload.MaxBytes
	if fileHeader.Size > maxBytes {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Bucket] Upload of %d bytes exceeds limit of %d", fileHeader.Size, maxBytes)
		utils.JSON400(c, "file exceeds the upload size limit")
		return
	}

	// Override wins over the original filename. The key is passed through
	// verbatim, path-like names included.
	key := c.PostForm("fileName")
	if key == "" {
		key = fileHeader.Filename
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to open uploaded file")
		utils.JSON500Details(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	// Buffered fully into memory before the store call, bounded by maxBytes.
	payload, err := io.ReadAll(file)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to buffer uploaded file")
		utils.JSON500Details(c, "Failed to read uploaded file", err)
		return
	}

	result, err := ctrl.Infra.ObjectStore.Upload(ctx, bucketName, key, bytes.NewReader(payload), int64(len(payload)), contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to upload %s to %s", key, bucketName)
		utils.JSON500Details(c, "Failed to upload file", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Uploaded %s (%d bytes) to %s", key, result.Size, bucketName)
	utils.JSON200(c, gin.H{
		"message":  "file uploaded",
		"fileName": key,
		"location": result.Location,
		"etag":     result.ETag,
	})
}

// DeleteObject godoc
// @Summary  Delete one file from a bucket
// @Tags     buckets
// @Produce  json
// @Param    bucketName path string true "bucket name"
// @Param    fileName   path string true "object key"
// @Success  200 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /buckets/{bucketName}/file/{fileName} [delete]
func (ctrl *Controller) DeleteObject(c *gin.Context) {
	ctx := c.Request.Context()
	bucketName := c.Param("bucketName")
	fileName := c.Param("fileName")

	// Existence probe first; the probe-then-delete pair is not atomic, so a
	// concurrent removal surfaces below as a store error.
	_, err := ctrl.Infra.ObjectStore.Stat(ctx, bucketName, fileName)
	if errors.Is(err, entity.ErrNotFound) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Bucket] Object %s not found in %s", fileName, bucketName)
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "file not found",
			"fileName":   fileName,
			"bucketName": bucketName,
		})
		return
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to probe %s in %s", fileName, bucketName)
		utils.JSON500Details(c, "Failed to check file existence", err)
		return
	}

	if err := ctrl.Infra.ObjectStore.Remove(ctx, bucketName, fileName); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to delete %s from %s", fileName, bucketName)
		utils.JSON500Details(c, "Failed to delete file", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Deleted %s from %s", fileName, bucketName)
	utils.JSON200(c, gin.H{
		"message":    "file deleted",
		"fileName":   fileName,
		"bucketName": bucketName,
	})
}
