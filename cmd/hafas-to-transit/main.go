package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	lib "github.com/theoremus-urban-solutions/hafas-to-transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/config"
	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/internal"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	call := flag.String("call", "journeys", "journeys|departures|movements|locations|warnings")
	input := flag.String("input", "-", "raw response file, or - for stdin")
	configPath := flag.String("config", "", "config file path (overrides default lookup)")
	flag.Parse()

	internal.InitLogging()
	var err error
	if *configPath != "" {
		err = config.LoadAppConfig(*configPath)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		panic(err)
	}

	switch *mode {
	case "serve":
		lib.StartServer()
		lib.HandleGracefulShutdown()
	case "oneshot":
		raw, err := readInput(*input)
		if err != nil {
			panic(err)
		}
		buf, err := normalize(*call, raw)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func normalize(call string, raw []byte) ([]byte, error) {
	n, err := lib.NewNormalizerFromConfig(config.Config)
	if err != nil {
		return nil, err
	}
	switch call {
	case "journeys":
		var res hafas.JourneysResponse
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		tables := n.BuildTables(&res.Common)
		journeys := make([]*transit.Journey, 0, len(res.ConL))
		for i := range res.ConL {
			j, err := n.Journey(tables, &res.ConL[i])
			if err != nil {
				return nil, err
			}
			journeys = append(journeys, j)
		}
		return json.MarshalIndent(map[string]any{"journeys": journeys}, "", "  ")
	case "departures":
		var res hafas.BoardResponse
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		tables := n.BuildTables(&res.Common)
		departures := make([]*transit.Departure, 0, len(res.JnyL))
		for i := range res.JnyL {
			d, err := n.Departure(tables, &res.JnyL[i])
			if err != nil {
				return nil, err
			}
			departures = append(departures, d)
		}
		return json.MarshalIndent(map[string]any{"departures": departures}, "", "  ")
	case "movements":
		var res hafas.RadarResponse
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		tables := n.BuildTables(&res.Common)
		movements := make([]*transit.Movement, 0, len(res.JnyL))
		for i := range res.JnyL {
			m, err := n.Movement(tables, &res.JnyL[i])
			if err != nil {
				return nil, err
			}
			movements = append(movements, m)
		}
		return json.MarshalIndent(map[string]any{"movements": movements}, "", "  ")
	case "locations":
		var res hafas.LocationsResponse
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		locations := make([]transit.Place, 0, len(res.LocL))
		for i := range res.LocL {
			locations = append(locations, n.Place(&res.LocL[i]))
		}
		return json.MarshalIndent(map[string]any{"locations": locations}, "", "  ")
	case "warnings":
		var res hafas.WarningsResponse
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, err
		}
		tables := n.BuildTables(&res.Common)
		warnings := make([]*transit.Warning, 0, len(res.MsgL))
		for i := range res.MsgL {
			warnings = append(warnings, n.Warning(tables, &res.MsgL[i]))
		}
		return json.MarshalIndent(map[string]any{"warnings": warnings}, "", "  ")
	}
	return nil, fmt.Errorf("unknown call %q", call)
}
