// Package gen writes deterministic synthetic measurement files for
// benchmarks and testing.
package gen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/eunmann/brcagg/internal/logctx"
	"github.com/eunmann/brcagg/pkg/logging"
)

// stationPool is the name pool rows draw from. It deliberately mixes plain
// ASCII with multi-byte UTF-8 names so byte-lexicographic output ordering
// gets exercised by generated data.
var stationPool = []string{
	"Abha", "Abidjan", "Accra", "Addis Ababa", "Adelaide", "Algiers",
	"Amsterdam", "Anchorage", "Ankara", "Antananarivo", "Asmara", "Athens",
	"Auckland", "Baghdad", "Bamako", "Bangkok", "Barcelona", "Beirut",
	"Belgrade", "Bergen", "Berlin", "Bilbao", "Bogotá", "Bordeaux",
	"Brazzaville", "Bridgetown", "Brussels", "Bucharest", "Budapest",
	"Cairo", "Calgary", "Canberra", "Cape Town", "Changsha", "Chicago",
	"Chișinău", "Colombo", "Copenhagen", "Dakar", "Dallas", "Damascus",
	"Dar es Salaam", "Denver", "Dhaka", "Dodoma", "Dublin", "Dushanbe",
	"Edinburgh", "Erbil", "Fairbanks", "Fukuoka", "Gaborone", "Gangtok",
	"Garissa", "Gjoa Haven", "Guangzhou", "Guatemala City", "Hamburg",
	"Hanoi", "Harare", "Havana", "Helsinki", "Hobart", "Hong Kong",
	"Honiara", "Honolulu", "Houston", "Irkutsk", "Istanbul", "Jakarta",
	"Jayapura", "Juba", "Kabul", "Kampala", "Kankan", "Karachi",
	"Kathmandu", "Khartoum", "Kingston", "Kinshasa", "Kuala Lumpur",
	"Kyiv", "Kyoto", "La Paz", "Lagos", "Lhasa", "Libreville", "Lisbon",
	"Ljubljana", "Lodwar", "Lomé", "London", "Los Angeles", "Louisville",
	"Lusaka", "Madrid", "Managua", "Manila", "Maputo", "Marrakesh",
	"Melbourne", "Mexico City", "Milan", "Minsk", "Mogadishu", "Monaco",
	"Moncton", "Montreal", "Moscow", "Mumbai", "Murmansk", "Muscat",
	"Nairobi", "Nassau", "New Delhi", "New York City", "Niamey", "Nicosia",
	"Nouakchott", "Novosibirsk", "Odesa", "Oslo", "Ottawa", "Ouagadougou",
	"Palermo", "Panama City", "Perth", "Petropavlovsk-Kamchatsky",
	"Phnom Penh", "Pontianak", "Prague", "Pretoria", "Pyongyang", "Quito",
	"Reykjavík", "Riga", "Riyadh", "Rome", "Saskatoon", "Seattle", "Seoul",
	"Singapore", "Skopje", "Sofia", "St. Louis", "Stockholm", "Suva",
	"São Paulo", "Tabriz", "Tallinn", "Tashkent", "Tbilisi", "Tegucigalpa",
	"Tehran", "Tirana", "Tokyo", "Toronto", "Tripoli", "Tunis", "Ulaanbaatar",
	"Vancouver", "Vienna", "Vilnius", "Warsaw", "Wellington", "Whitehorse",
	"Winnipeg", "Yakutsk", "Yaoundé", "Yellowknife", "Zagreb", "Zanzibar City",
	"Zürich", "Ürümqi", "İzmir",
}

// Config configures synthetic measurement generation.
type Config struct {
	// Rows is the number of records to generate.
	Rows int64
	// Stations is the number of distinct stations drawn from the pool.
	// 0 or anything past the pool size uses the whole pool.
	Stations int
	// Seed for reproducible generation. 0 = use default seed.
	Seed int64
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig(rows int64) Config {
	return Config{
		Rows:     rows,
		Stations: len(stationPool),
		Seed:     42,
	}
}

// Generator produces synthetic measurement records. Output is a pure
// function of the Config, so benchmark inputs are reproducible.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	names []string
	means []float64
}

// NewGenerator creates a new measurement generator.
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	if cfg.Stations <= 0 || cfg.Stations > len(stationPool) {
		cfg.Stations = len(stationPool)
	}

	rng := rand.New(rand.NewSource(seed))
	names := stationPool[:cfg.Stations]

	// Each station gets a fixed climate mean; samples spread around it.
	means := make([]float64, len(names))
	for i := range means {
		means[i] = -30 + rng.Float64()*65
	}

	return &Generator{
		cfg:   cfg,
		rng:   rng,
		names: names,
		means: means,
	}
}

// WriteTo writes all configured rows to w and returns the byte count.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	var written int64
	buf := make([]byte, 0, 128)

	for i := int64(0); i < g.cfg.Rows; i++ {
		buf = g.appendRow(buf[:0])
		n, err := w.Write(buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// appendRow appends one record: <station>;<temp>\n with one fractional digit.
func (g *Generator) appendRow(buf []byte) []byte {
	i := g.rng.Intn(len(g.names))
	temp := g.rng.NormFloat64()*10 + g.means[i]
	if temp > 99.9 {
		temp = 99.9
	} else if temp < -99.9 {
		temp = -99.9
	}

	buf = append(buf, g.names[i]...)
	buf = append(buf, ';')
	buf = strconv.AppendFloat(buf, temp, 'f', 1, 64)
	return append(buf, '\n')
}

// WriteFile generates the configured rows into path, logging progress.
func (g *Generator) WriteFile(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	log := logctx.FromContext(ctx)
	tracker := logging.NewTracker("generate", g.cfg.Rows, 5*time.Second, log)

	w := bufio.NewWriterSize(f, 1<<20)
	buf := make([]byte, 0, 128)
	for i := int64(0); i < g.cfg.Rows; i++ {
		buf = g.appendRow(buf[:0])
		if _, err := w.Write(buf); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		tracker.Add(1)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	tracker.Finish("measurements file written")
	return nil
}
