package main

import (
	"errors"
	"os"

	"github.com/12PUFFS/Practic16/cmd"
	"github.com/12PUFFS/Practic16/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	applyLogLevel(configs.LogLevel)

	app := cmd.NewCompositionRoot(configs)
	showcaseOrders(&app)
	showcaseRejections(&app)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		LogLevel: goDotEnvVariable("LOG_LEVEL"),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return os.Getenv(key)
}

func applyLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}

// buildOrder applies the already-evaluated mutation results and finalizes
// the order. Argument evaluation happens left to right, so the mutations
// run against the builder before Join inspects their outcomes.
func buildOrder(builder *order.Builder, mutations ...error) (*order.Order, error) {
	if err := errors.Join(mutations...); err != nil {
		return nil, err
	}
	return builder.Build()
}

func showcaseOrders(app *cmd.CompositionRoot) {
	builder := app.NewOrderBuilder()

	espresso, err := buildOrder(builder,
		builder.SetBase(order.BaseEspresso),
		builder.SetSize(order.SizeSmall),
	)
	if err != nil {
		log.Fatalf("espresso order: %v", err)
	}
	log.Infof("1. %s (%s)", espresso, espresso.Price())

	latte, err := buildOrder(builder.Reset(),
		builder.SetBase(order.BaseLatte),
		builder.SetSize(order.SizeMedium),
		builder.SetMilk(order.MilkOat),
	)
	if err != nil {
		log.Fatalf("latte order: %v", err)
	}
	log.Infof("2. %s (%s)", latte, latte.Price())

	cappuccino, err := buildOrder(builder.Reset().SetIced(true),
		builder.SetBase(order.BaseCappuccino),
		builder.SetSize(order.SizeLarge),
		builder.AddSyrup("карамель"),
	)
	if err != nil {
		log.Fatalf("cappuccino order: %v", err)
	}
	log.Infof("3. %s (%s)", cappuccino, cappuccino.Price())

	americano, err := buildOrder(builder.Reset(),
		builder.SetBase(order.BaseAmericano),
		builder.SetSize(order.SizeMedium),
		builder.SetSugar(2),
	)
	if err != nil {
		log.Fatalf("americano order: %v", err)
	}
	log.Infof("4. %s (%s)", americano, americano.Price())

	soyLatte, err := buildOrder(builder.Reset().SetIced(true),
		builder.SetBase(order.BaseLatte),
		builder.SetSize(order.SizeLarge),
		builder.SetMilk(order.MilkSoy),
		builder.AddSyrup("ваниль"),
		builder.AddSyrup("фундук"),
		builder.SetSugar(1),
	)
	if err != nil {
		log.Fatalf("soy latte order: %v", err)
	}
	log.Infof("5. %s (%s)", soyLatte, soyLatte.Price())
}

func showcaseRejections(app *cmd.CompositionRoot) {
	builder := app.NewOrderBuilder()

	if err := builder.SetSugar(6); err != nil {
		log.Warnf("rejected mutation: %v", err)
	}

	if err := builder.SetBase(order.BaseLatte); err != nil {
		log.Fatalf("set base: %v", err)
	}
	if _, err := builder.Build(); err != nil {
		log.Warnf("rejected build: %v", err)
	}
}
