package main

import (
	"flag"
	"fmt"
	"log"

	lib "github.com/speleotech/surveyd"
	"github.com/speleotech/surveyd/config"
	"github.com/speleotech/surveyd/formatter"
	"github.com/speleotech/surveyd/internal"
	"github.com/speleotech/surveyd/reducer"
	"github.com/speleotech/surveyd/store"
	"github.com/speleotech/surveyd/survey"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	input := flag.String("input", "", "path to a shots JSON document (oneshot)")
	originStation := flag.String("origin", "", "origin station (overrides document)")
	originX := flag.Float64("x", 0, "origin X (east)")
	originY := flag.Float64("y", 0, "origin Y (north)")
	originZ := flag.Float64("z", 0, "origin Z (up)")
	originMode := flag.String("originMode", "", "permissive|strict (overrides config)")
	flag.Parse()

	internal.InitLogging()

	switch *mode {
	case "oneshot":
		if *input == "" {
			log.Fatal("oneshot mode requires -input")
		}
		doc, err := loadShots(*input)
		if err != nil {
			log.Fatalf("load shots: %v", err)
		}
		om := reducer.OriginPermissive
		if *originMode != "" {
			om = reducer.OriginMode(*originMode)
		}
		origin := doc.origin(*originStation, *originX, *originY, *originZ)
		shots := survey.NormalizeShots(doc.Shots)
		res, err := reducer.Reduce(shots, origin, reducer.Options{OriginMode: om})
		if err != nil {
			log.Fatalf("reduce: %v", err)
		}
		buf := formatter.NewResponseBuilder().BuildJSON(formatter.BuildReduceResponse(origin, res))
		fmt.Println(string(buf))
	case "serve":
		if err := config.LoadAppConfig(); err != nil {
			log.Fatalf("load config: %v", err)
		}
		if *originMode != "" {
			config.Config.Reduce.OriginMode = *originMode
		}
		st, err := store.Open(config.Config.Database.Path)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		lib.StartServer(st)
		lib.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
