//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	infraRepos "github.com/rios0rios0/autobump/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/autobump/test/infrastructure/repositorydoubles"
)

func TestDocumentRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should retrieve a document by name and alias", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDocumentRegistry()
		stub := &doubles.StubDocumentRepository{DocumentName: "manifest", DocumentAliases: []string{"csproj"}}
		reg.Register(stub)

		// when
		byName, nameErr := reg.Get("manifest")
		byAlias, aliasErr := reg.Get("csproj")

		// then
		require.NoError(t, nameErr)
		require.NoError(t, aliasErr)
		assert.Same(t, stub, byName)
		assert.Same(t, stub, byAlias)
	})

	t.Run("should match type tags case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDocumentRegistry()
		reg.Register(&doubles.StubDocumentRepository{DocumentName: "attribute"})

		// when
		document, err := reg.Get(" Attribute ")

		// then
		require.NoError(t, err)
		assert.Equal(t, "attribute", document.Name())
	})

	t.Run("should fail with an unsupported type", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDocumentRegistry()
		reg.Register(&doubles.StubDocumentRepository{DocumentName: "manifest"})

		// when
		document, err := reg.Get("gradle")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnsupportedDocumentType)
		assert.Contains(t, err.Error(), "manifest")
		assert.Nil(t, document)
	})

	t.Run("should list the accepted tags sorted", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDocumentRegistry()
		reg.Register(&doubles.StubDocumentRepository{DocumentName: "manifest", DocumentAliases: []string{"csproj"}})
		reg.Register(&doubles.StubDocumentRepository{DocumentName: "attribute", DocumentAliases: []string{"assembly"}})

		// when
		names := reg.Names()

		// then
		assert.Equal(t, []string{"assembly", "attribute", "csproj", "manifest"}, names)
	})
}
