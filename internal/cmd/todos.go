package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// TodosCmd manages the todo list of a session
type TodosCmd struct {
	Clear TodosClearCmd `cmd:"clear" help:"Remove every todo"`
	Set   TodosSetCmd   `cmd:"set" help:"Replace the todo list"`
}

// TodosSetCmd replaces the todo list
type TodosSetCmd struct {
	ID    string   `arg:"" help:"Session ID"`
	Items []string `arg:"" help:"Todos as 'title' or 'title: description'; prefix with [x] when done" name:"todo"`
}

// Run executes the set command
func (t *TodosSetCmd) Run(cli *CLI) error {
	todos := make([]domain.TodoItem, 0, len(t.Items))
	for _, item := range t.Items {
		todos = append(todos, parseTodo(item))
	}

	if err := cli.Container.SessionService.UpdateTodos(context.Background(), t.ID, todos); err != nil {
		return fmt.Errorf("failed to update todos: %w", err)
	}
	return nil
}

// parseTodo reads "[x] title: description"
func parseTodo(item string) domain.TodoItem {
	var todo domain.TodoItem
	item = strings.TrimSpace(item)
	if rest, ok := strings.CutPrefix(item, "[x]"); ok {
		todo.Checked = true
		item = strings.TrimSpace(rest)
	}
	title, description, _ := strings.Cut(item, ":")
	todo.Title = strings.TrimSpace(title)
	todo.Description = strings.TrimSpace(description)
	return todo
}

// TodosClearCmd clears the todo list
type TodosClearCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the clear command
func (t *TodosClearCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.DeleteTodos(context.Background(), t.ID); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	return nil
}
