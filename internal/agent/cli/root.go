// Package cli реализует командный интерфейс (CLI) клиентского приложения plantcare.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальной сессии ({user, token}) из конфигурационного файла;
//   - загрузку локального кэша растений из plants-файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aditya-Angaj/plantcare/internal/agent/config"
	"github.com/Aditya-Angaj/plantcare/internal/agent/memory"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу, загруженная сессия
// и локальный кэш растений. Экземпляр App создаётся при построении
// root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера plantcare (например, "http://127.0.0.1:3000").
	ServerURL string

	// CredsPath — путь к файлу с сохранённой сессией ({user, token}).
	CredsPath string
	// Creds — загруженная сессия из файла конфигурации.
	// Пустая (Token == ""), если пользователь не залогинен.
	Creds *config.Credentials

	// PlantsPath — путь к файлу локального кэша растений.
	PlantsPath string
	// Plants — локальный кэш растений (зеркало последнего ответа сервера).
	Plants *memory.PlantsStore
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу сессии, загружается сохранённая сессия
// и локальный кэш растений.
//
// Если файл сессии повреждён (не парсится как JSON), он удаляется,
// и клиент продолжает работу как незалогиненный.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:3000",
		Plants:    memory.NewPlants(),
	}

	cmd := &cobra.Command{
		Use:   "plantcare",
		Short: "Plantcare CLI — трекер ухода за домашними растениями",
		Long: `Plantcare CLI.

Команды:
  register  Регистрация нового пользователя (сразу логинит)
  login     Логин (получить токен сессии)
  logout    Удалить локальную сессию
  whoami    Показать текущего пользователя
  list      Список растений (с сервера, кэшируется локально)
  add       Добавить растение
  update    Обновить поля растения
  water     Отметить полив (lastWateredAt = сейчас)
  remove    Удалить растение
  version   Версия и дата сборки

Примеры:

Регистрация:
  plantcare register --email test@example.com --password StrongPass123

Логин:
  plantcare login --email test@example.com --password StrongPass123
  (сохраняет сессию в локальном конфиге, токен живёт 24 часа)

Растения:
  plantcare add --name "Monstera" --species "Monstera deliciosa" --watering-days 7
  plantcare water <uuid>
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				// битый файл сессии равносилен logout
				if clearErr := config.Clear(app.CredsPath); clearErr != nil {
					return clearErr
				}
				creds = &config.Credentials{}
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: corrupted session file removed, please login again")
			}
			app.Creds = creds

			pp, err := memory.DefaultPlantsPath()
			if err != nil {
				return err
			}
			app.PlantsPath = pp

			// кэш не критичен: битый файл просто игнорируем
			if err := memory.LoadFromFile(app.PlantsPath, app.Plants); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: local plants cache unreadable, it will be rewritten")
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:3000", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewWhoamiCmd(app))
	cmd.AddCommand(PlantList(app))
	cmd.AddCommand(PlantCreate(app))
	cmd.AddCommand(PlantUpdate(app))
	cmd.AddCommand(PlantWater(app))
	cmd.AddCommand(PlantDelete(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
