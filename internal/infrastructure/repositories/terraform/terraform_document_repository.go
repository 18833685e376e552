package terraform

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	documentName  = "terraform"
	localsBlock   = "locals"
	versionName   = "version"
	inputFilename = "version.tf"
)

// TerraformDocumentRepository handles modules that carry their release version
// in HCL, either as locals { version = "..." } or as a top-level attribute.
type TerraformDocumentRepository struct{}

// NewDocumentRepository creates a Terraform document repository.
func NewDocumentRepository() repositories.DocumentRepository {
	return &TerraformDocumentRepository{}
}

func (r *TerraformDocumentRepository) Name() string      { return documentName }
func (r *TerraformDocumentRepository) Aliases() []string { return []string{"hcl"} }

// ReadVersion returns the version of the first locals block that declares one,
// falling back to a top-level version attribute.
func (r *TerraformDocumentRepository) ReadVersion(content string) (string, bool, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(content), inputFilename)
	if diags.HasErrors() {
		return "", false, fmt.Errorf("%w: %s", entities.ErrMalformedDocument, diags.Error())
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: versionName}},
		Blocks:     []hcl.BlockHeaderSchema{{Type: localsBlock}},
	})
	if diags.HasErrors() {
		return "", false, fmt.Errorf("%w: %s", entities.ErrMalformedDocument, diags.Error())
	}

	for _, block := range bodyContent.Blocks {
		attrs, _ := block.Body.JustAttributes()
		if attr, ok := attrs[versionName]; ok {
			return stringValue(attr)
		}
	}

	if attr, ok := bodyContent.Attributes[versionName]; ok {
		return stringValue(attr)
	}
	return "", false, nil
}

func stringValue(attr *hcl.Attribute) (string, bool, error) {
	value, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || value.Type() != cty.String || !value.IsKnown() || value.IsNull() {
		return "", false, fmt.Errorf("%w: %s at line %d is not a string literal",
			entities.ErrMalformedDocument, versionName, attr.Range.Start.Line)
	}
	return value.AsString(), true, nil
}

// WriteVersion sets the version attribute in place, keeping every other token.
func (r *TerraformDocumentRepository) WriteVersion(content, version string) (string, error) {
	file, diags := hclwrite.ParseConfig([]byte(content), inputFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w: %s", entities.ErrMalformedDocument, diags.Error())
	}

	value := cty.StringVal(version)
	body := file.Body()

	var firstLocals *hclwrite.Block
	for _, block := range body.Blocks() {
		if block.Type() != localsBlock {
			continue
		}
		if block.Body().GetAttribute(versionName) != nil {
			block.Body().SetAttributeValue(versionName, value)
			return string(file.Bytes()), nil
		}
		if firstLocals == nil {
			firstLocals = block
		}
	}

	switch {
	case body.GetAttribute(versionName) != nil:
		body.SetAttributeValue(versionName, value)
	case firstLocals != nil:
		firstLocals.Body().SetAttributeValue(versionName, value)
	default:
		if len(body.Attributes()) > 0 || len(body.Blocks()) > 0 {
			body.AppendNewline()
		}
		body.AppendNewBlock(localsBlock, nil).Body().SetAttributeValue(versionName, value)
	}

	return string(file.Bytes()), nil
}
