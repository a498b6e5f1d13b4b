package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Commands AssetConfig[*commands.Command] `json:"commands"`
	Riddles  AssetConfig[*game.Riddle]      `json:"riddles"`
	Models   AssetConfig[*assets.ModelSpec] `json:"models"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Commands.Validate("commands"))
	el.Add(c.Riddles.Validate("riddles"))
	el.Add(c.Models.Validate("models"))
	return el.Err()
}

func (c *StorageConfig) BuildRiddleBook() (*game.RiddleBook, error) {
	riddles, err := c.Riddles.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating riddle store: %w", err)
	}
	book, err := game.NewRiddleBook(riddles)
	if err != nil {
		return nil, fmt.Errorf("indexing riddles: %w", err)
	}
	return book, nil
}

func (c *StorageConfig) BuildLoader() (*assets.StoreLoader, error) {
	models, err := c.Models.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating model store: %w", err)
	}
	return assets.NewStoreLoader(models), nil
}

func (c *StorageConfig) BuildCommandHandler() (*commands.Handler, error) {
	cmds, err := c.Commands.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating command store: %w", err)
	}
	h := commands.NewHandler(cmds)
	if err := h.CompileAll(); err != nil {
		return nil, err
	}
	return h, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
