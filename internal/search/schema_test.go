package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `datasource db {
  provider = "postgresql"
}

model User {
  id    Int     @id @default(autoincrement())
  // login name
  email String  @unique

  @@map("users")
}

model Post {
  id     Int  @id
  author User @relation(fields: [authorId], references: [id])
}
`

func TestExtractModels(t *testing.T) {
	models := ExtractModels(sampleSchema)
	require.Len(t, models, 2)

	assert.Equal(t, "User", models[0].Name)
	assert.Equal(t, []string{
		"id    Int     @id @default(autoincrement())",
		"email String  @unique",
	}, models[0].Fields)
	assert.Equal(t, "Post", models[1].Name)
}

func TestFormatModel(t *testing.T) {
	out := FormatModel(Model{Name: "User", Fields: []string{"id Int", "name String"}})
	assert.Equal(t, "User:\n  id Int\n  name String", out)
}

func TestModels_MissingSchemaIsEmpty(t *testing.T) {
	s := &Searcher{SchemaPath: filepath.Join(t.TempDir(), "prisma", "schema.prisma")}

	res, err := s.Models()
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestModels_SingleResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.prisma")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchema), 0o644))
	s := &Searcher{SchemaPath: path}

	res, err := s.Models()
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Prisma Models", res[0].Title)
	assert.Equal(t, KindCode, res[0].Kind)
	assert.Equal(t, path, res[0].Location)
	assert.Contains(t, res[0].Content, "User:\n  id")
	assert.Contains(t, res[0].Content, "\n\nPost:\n  id")
}
