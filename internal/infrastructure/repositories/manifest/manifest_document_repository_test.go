//go:build unit

package manifest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/infrastructure/repositories/manifest"
)

const sdkProject = `<Project Sdk="Microsoft.NET.Sdk">
  <!-- build settings -->
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Version>1.2.3</Version>
    <AssemblyVersion>1.2.3.0</AssemblyVersion>
    <FileVersion>1.2.3.0</FileVersion>
    <PackageVersion>1.2.3</PackageVersion>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" Version="13.0.1" />
  </ItemGroup>
</Project>
`

func TestManifestDocumentRepository_Name(t *testing.T) {
	t.Parallel()

	t.Run("should return manifest with the csproj alias", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()

		// when
		name := repo.Name()
		aliases := repo.Aliases()

		// then
		assert.Equal(t, "manifest", name)
		assert.Equal(t, []string{"csproj"}, aliases)
	})
}

func TestManifestDocumentRepository_ReadVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
		found    bool
	}{
		{
			name:     "should read the Version field of an SDK project",
			content:  sdkProject,
			expected: "1.2.3",
			found:    true,
		},
		{
			name: "should read the Version of a later group when the first has none",
			content: `<Project>
  <PropertyGroup><TargetFramework>net8.0</TargetFramework></PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)' == 'Release'"><Version>4.5.6</Version></PropertyGroup>
</Project>`,
			expected: "4.5.6",
			found:    true,
		},
		{
			name: "should skip a group whose Version field is duplicated",
			content: `<Project>
  <PropertyGroup><Version>1.0.0</Version><Version>1.1.0</Version></PropertyGroup>
  <PropertyGroup><Version>2.0.0</Version></PropertyGroup>
</Project>`,
			expected: "2.0.0",
			found:    true,
		},
		{
			name:     "should trim blanks around the value",
			content:  "<Project><PropertyGroup><Version>\n  1.2.3\n</Version></PropertyGroup></Project>",
			expected: "1.2.3",
			found:    true,
		},
		{
			name: "should read projects with the legacy MSBuild namespace",
			content: `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="15.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Version>0.9.0-rc.1</Version>
  </PropertyGroup>
</Project>`,
			expected: "0.9.0-rc.1",
			found:    true,
		},
		{
			name:    "should report absence when no group declares a Version",
			content: "<Project><PropertyGroup><TargetFramework>net8.0</TargetFramework></PropertyGroup></Project>",
			found:   false,
		},
		{
			name:    "should ignore Version attributes outside property groups",
			content: `<Project><ItemGroup><PackageReference Include="x" Version="1.0.0" /></ItemGroup></Project>`,
			found:   false,
		},
		{
			name:    "should report absence for an empty Version field",
			content: "<Project><PropertyGroup><Version /></PropertyGroup></Project>",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			repo := manifest.NewDocumentRepository()

			// when
			version, found, err := repo.ReadVersion(tt.content)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, version)
		})
	}

	t.Run("should fail on malformed XML", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup><Version>1.0.0</PropertyGroup></Project>"

		// when
		_, _, err := repo.ReadVersion(content)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrMalformedDocument)
	})
}

func TestManifestDocumentRepository_WriteVersion(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite every version field and nothing else", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		expected := strings.NewReplacer(
			"<Version>1.2.3</Version>", "<Version>2.0.0</Version>",
			"<AssemblyVersion>1.2.3.0</AssemblyVersion>", "<AssemblyVersion>2.0.0.0</AssemblyVersion>",
			"<FileVersion>1.2.3.0</FileVersion>", "<FileVersion>2.0.0.0</FileVersion>",
			"<PackageVersion>1.2.3</PackageVersion>", "<PackageVersion>2.0.0</PackageVersion>",
		).Replace(sdkProject)

		// when
		result, err := repo.WriteVersion(sdkProject, "2.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, result)
		assert.Contains(t, result, `Version="13.0.1"`)
	})

	t.Run("should rewrite the fields of every property group", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project>\r\n" +
			"\t<PropertyGroup><Version>1.0.0</Version></PropertyGroup>\r\n" +
			"\t<PropertyGroup Label=\"pack\"><PackageVersion>1.0.0</PackageVersion></PropertyGroup>\r\n" +
			"</Project>\r\n"

		// when
		result, err := repo.WriteVersion(content, "1.1.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<Project>\r\n"+
			"\t<PropertyGroup><Version>1.1.0</Version></PropertyGroup>\r\n"+
			"\t<PropertyGroup Label=\"pack\"><PackageVersion>1.1.0</PackageVersion></PropertyGroup>\r\n"+
			"</Project>\r\n", result)
	})

	t.Run("should leave duplicated fields untouched", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup>" +
			"<Version>1.0.0</Version>" +
			"<AssemblyVersion>1.0.0.0</AssemblyVersion>" +
			"<AssemblyVersion>9.9.9.9</AssemblyVersion>" +
			"</PropertyGroup></Project>"

		// when
		result, err := repo.WriteVersion(content, "2.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<Project><PropertyGroup>"+
			"<Version>2.0.0</Version>"+
			"<AssemblyVersion>1.0.0.0</AssemblyVersion>"+
			"<AssemblyVersion>9.9.9.9</AssemblyVersion>"+
			"</PropertyGroup></Project>", result)
	})

	t.Run("should fail when every Version field is ambiguous", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup><Version>1.0.0</Version><Version>1.1.0</Version></PropertyGroup></Project>"

		// when
		result, err := repo.WriteVersion(content, "2.0.0")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrAmbiguousField)
		assert.Empty(t, result)
	})

	t.Run("should append a Version field to the first group when none exists", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := `<Project>
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
  <PropertyGroup>
    <Nullable>enable</Nullable>
  </PropertyGroup>
</Project>
`

		// when
		result, err := repo.WriteVersion(content, "1.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, `<Project>
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Version>1.0.0</Version>
  </PropertyGroup>
  <PropertyGroup>
    <Nullable>enable</Nullable>
  </PropertyGroup>
</Project>
`, result)
	})

	t.Run("should append inline when the closing tag shares a line", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup><Foo>x</Foo></PropertyGroup></Project>"

		// when
		result, err := repo.WriteVersion(content, "1.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<Project><PropertyGroup><Foo>x</Foo><Version>1.0.0</Version></PropertyGroup></Project>", result)
	})

	t.Run("should expand a self-closing first group", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup /></Project>"

		// when
		result, err := repo.WriteVersion(content, "1.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<Project><PropertyGroup><Version>1.0.0</Version></PropertyGroup></Project>", result)
	})

	t.Run("should fill a self-closing Version field", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project><PropertyGroup><Version /></PropertyGroup></Project>"

		// when
		result, err := repo.WriteVersion(content, "1.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<Project><PropertyGroup><Version>1.0.0</Version></PropertyGroup></Project>", result)
	})

	t.Run("should return the document unchanged when it has no property group", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project>\n  <ItemGroup />\n</Project>\n"

		// when
		result, err := repo.WriteVersion(content, "1.0.0")

		// then
		require.NoError(t, err)
		assert.Equal(t, content, result)
	})

	t.Run("should fail on malformed XML without returning content", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()

		// when
		result, err := repo.WriteVersion("<Project><PropertyGroup>", "1.0.0")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrMalformedDocument)
		assert.Empty(t, result)
	})

	t.Run("should read back the written version", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()

		// when
		written, writeErr := repo.WriteVersion(sdkProject, "3.1.0-beta.2")
		version, found, readErr := repo.ReadVersion(written)

		// then
		require.NoError(t, writeErr)
		require.NoError(t, readErr)
		assert.True(t, found)
		assert.Equal(t, "3.1.0-beta.2", version)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewDocumentRepository()
		content := "<Project>\n  <PropertyGroup>\n    <Nullable>enable</Nullable>\n  </PropertyGroup>\n</Project>\n"

		// when
		once, firstErr := repo.WriteVersion(content, "1.4.0")
		twice, secondErr := repo.WriteVersion(once, "1.4.0")

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, once, twice)
	})
}
