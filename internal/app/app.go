package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"order_viewer/internal/api"
	"order_viewer/internal/config"
	"order_viewer/internal/terminal"
	"order_viewer/internal/ui"
)

const help = `Commands:
  search <order_id>   look up an order by its ID
  example             look up one of the example orders
  create              ask the service to generate a random order
  list                show recent orders
  stats               show cache statistics
  health              check service health
  help                print this help
  quit                exit`

// App связывает конфигурацию, API-клиент, контроллер и терминал
// в интерактивный просмотрщик заказов
type App struct {
	cfg        *config.Config
	controller *ui.Controller
	term       *terminal.Terminal
	in         io.Reader
	out        io.Writer
}

// New создает и инициализирует новый экземпляр App.
// Логи уходят в логгер, вывод просмотрщика — в out.
func New(cfg *config.Config, in io.Reader, out io.Writer) *App {
	term := terminal.New(out)
	client := api.NewClient(cfg.APIBaseURL, &http.Client{})
	controller := ui.NewController(client, term, cfg.OrdersLimit)

	return &App{
		cfg:        cfg,
		controller: controller,
		term:       term,
		in:         in,
		out:        out,
	}
}

// Run крутит командный цикл до quit, конца ввода или отмены контекста.
// Команды выполняются строго по одной: пока запрос в полете, следующая
// строка не читается.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Order viewer. API: %s\n%s\n", a.cfg.APIBaseURL, help)

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "\n> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arg, _ := strings.Cut(line, " ")
		if done := a.dispatch(ctx, command, strings.TrimSpace(arg)); done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("Failed to read input", "error", err)
	}

	slog.Info("Order viewer stopped")
}

// dispatch выполняет одну команду; возвращает true для выхода
func (a *App) dispatch(ctx context.Context, command, arg string) bool {
	switch command {
	case "search":
		if arg == "" {
			// Повторный поиск по идентификатору, оставшемуся в поле ввода
			arg = a.term.Input()
		}
		a.controller.Search(ctx, arg)
	case "example":
		a.controller.SearchExample(ctx)
	case "create":
		a.controller.CreateRandomOrder(ctx)
	case "list":
		a.controller.ListOrders(ctx)
	case "stats":
		a.controller.ShowCacheStats(ctx)
	case "health":
		a.controller.HealthCheck(ctx)
	case "help":
		fmt.Fprintln(a.out, help)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q, type 'help' for the list\n", command)
	}
	return false
}
