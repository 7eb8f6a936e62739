package controllers_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"

	"github.com/alerta-vecinal/api-go/controllers"
)

// listadorPaginado serves pre-baked list pages and records the tokens it was
// asked to continue from.
type listadorPaginado struct {
	paginas []*s3.ListObjectsV2Output
	llamada int
	tokens  []*string
}

func (l *listadorPaginado) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	l.tokens = append(l.tokens, in.ContinuationToken)
	out := l.paginas[l.llamada]
	l.llamada++
	return out, nil
}

func paginaDeClaves(claves []string, siguiente *string) *s3.ListObjectsV2Output {
	out := &s3.ListObjectsV2Output{NextContinuationToken: siguiente}
	for _, clave := range claves {
		out.Contents = append(out.Contents, s3types.Object{Key: aws.String(clave)})
	}
	return out
}

func TestClavesConPrefijoSiguePaginas(t *testing.T) {
	lister := &listadorPaginado{
		paginas: []*s3.ListObjectsV2Output{
			paginaDeClaves([]string{
				"denuncias/7/evidencias/a.jpg",
				"denuncias/7/evidencias/b.jpg",
			}, aws.String("pagina-2")),
			paginaDeClaves([]string{
				"denuncias/7/evidencias/c.jpg",
			}, nil),
		},
	}

	claves, err := controllers.ClavesConPrefijo(context.Background(), lister, "bucket", "denuncias/7/evidencias/")
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"denuncias/7/evidencias/a.jpg",
		"denuncias/7/evidencias/b.jpg",
		"denuncias/7/evidencias/c.jpg",
	}, claves, "keys beyond the first page are not left behind")

	assert.Equal(t, 2, lister.llamada)
	assert.Nil(t, lister.tokens[0])
	assert.Equal(t, "pagina-2", aws.ToString(lister.tokens[1]))
}

func TestClavesConPrefijoSinObjetos(t *testing.T) {
	lister := &listadorPaginado{paginas: []*s3.ListObjectsV2Output{paginaDeClaves(nil, nil)}}

	claves, err := controllers.ClavesConPrefijo(context.Background(), lister, "bucket", "denuncias/9/evidencias/")
	assert.NoError(t, err)
	assert.Empty(t, claves)
}
