package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alerta-vecinal/api-go/config"
	"github.com/alerta-vecinal/api-go/models"
	"github.com/alerta-vecinal/api-go/utils"
)

type EvidenciaController struct {
	DB            *gorm.DB
	StorageClient *s3.Client
	StorageConfig *config.StorageConfig
}

func NewEvidenciaController(db *gorm.DB) *EvidenciaController {
	storageConfig := config.GetStorageConfig()

	storageClient := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", storageConfig.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			storageConfig.AccessKeyID,
			storageConfig.SecretAccessKey,
			"",
		),
		Region: storageConfig.Region,
	})

	return &EvidenciaController{
		DB:            db,
		StorageClient: storageClient,
		StorageConfig: storageConfig,
	}
}

const maxEvidenciaSize = 25 * 1024 * 1024 // 25MB per file

// SubirEvidencias godoc
// @Summary Upload evidence files for a complaint
// @Description Uploads each file to object storage under the complaint's folder and records an Evidencia per file. Individual failures are skipped.
// @Tags evidencias
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 201 {object} StandardResponse
// @Router /denuncias/{id}/evidencias [post]
func (ec *EvidenciaController) SubirEvidencias(c *gin.Context) {
	denunciaID := c.Param("id")

	var denuncia models.Denuncia
	if err := ec.DB.First(&denuncia, denunciaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Denuncia not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	archivos := form.File["archivos"]
	if len(archivos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
		return
	}

	if len(archivos) > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 10 files allowed per upload"})
		return
	}

	var subidas []models.Evidencia
	var omitidas []string

	// Batch is not all-or-nothing: a failing file is skipped and the rest
	// continue.
	for _, archivo := range archivos {
		if archivo.Size > maxEvidenciaSize {
			log.Printf("Skipping %s: file too large (%d bytes)", archivo.Filename, archivo.Size)
			omitidas = append(omitidas, archivo.Filename)
			continue
		}

		contentType := archivo.Header.Get("Content-Type")
		key := ec.generarClaveEvidencia(denuncia.ID, archivo.Filename)

		f, err := archivo.Open()
		if err != nil {
			log.Printf("Skipping %s: %v", archivo.Filename, err)
			omitidas = append(omitidas, archivo.Filename)
			continue
		}

		_, err = ec.StorageClient.PutObject(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(ec.StorageConfig.BucketName),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(contentType),
		})
		f.Close()
		if err != nil {
			log.Printf("Skipping %s: upload failed: %v", archivo.Filename, err)
			omitidas = append(omitidas, archivo.Filename)
			continue
		}

		evidencia := models.Evidencia{
			DenunciaID: denuncia.ID,
			Tipo:       utils.InferirTipoEvidencia(contentType),
			URL:        fmt.Sprintf("%s/%s", ec.StorageConfig.PublicURL, key),
			Nombre:     archivo.Filename,
			Extension:  filepath.Ext(archivo.Filename),
			Subida:     true,
		}

		if err := ec.DB.Create(&evidencia).Error; err != nil {
			log.Printf("Skipping %s: could not persist evidencia: %v", archivo.Filename, err)
			omitidas = append(omitidas, archivo.Filename)
			continue
		}

		subidas = append(subidas, evidencia)
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data: gin.H{
			"evidencias": subidas,
			"omitidas":   omitidas,
		},
		Message: fmt.Sprintf("%d of %d files uploaded", len(subidas), len(archivos)),
	})
}

// ClavesConPrefijo lists every object key under the prefix, following
// continuation tokens so folders larger than one list page are fully covered.
func ClavesConPrefijo(ctx context.Context, client s3.ListObjectsV2APIClient, bucket, prefix string) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	var claves []string
	for {
		out, err := client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			claves = append(claves, aws.ToString(obj.Key))
		}
		if out.NextContinuationToken == nil {
			return claves, nil
		}
		input.ContinuationToken = out.NextContinuationToken
	}
}

// EliminarObjetosDenuncia removes every stored object under the complaint's
// evidence folder. The object store has no real folder concept, so a failure
// to clean up the residual prefix is non-fatal.
func (ec *EvidenciaController) EliminarObjetosDenuncia(denunciaID uint) error {
	prefix := fmt.Sprintf("denuncias/%d/evidencias/", denunciaID)

	claves, err := ClavesConPrefijo(context.TODO(), ec.StorageClient, ec.StorageConfig.BucketName, prefix)
	if err != nil {
		return err
	}

	for _, clave := range claves {
		_, err := ec.StorageClient.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(ec.StorageConfig.BucketName),
			Key:    aws.String(clave),
		})
		if err != nil {
			log.Printf("Failed to delete evidence object %s: %v", clave, err)
		}
	}

	// Best effort on the prefix marker itself.
	_, _ = ec.StorageClient.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(ec.StorageConfig.BucketName),
		Key:    aws.String(prefix),
	})

	return nil
}

func (ec *EvidenciaController) generarClaveEvidencia(denunciaID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	id := uuid.New().String()
	timestamp := time.Now().Unix()

	return fmt.Sprintf("denuncias/%d/evidencias/%d_%s%s", denunciaID, timestamp, id, ext)
}
