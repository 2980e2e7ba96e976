package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/wavepick"
)

func main() {
	var orderCounts wavepick.ArrayIntFlags
	var corridorCounts wavepick.ArrayIntFlags
	var densities wavepick.ArrayFloatFlags
	flag.Var(&orderCounts, "orders", "List of order counts to generate instances for")
	flag.Var(&corridorCounts, "corridors", "List of corridor counts to generate instances for")
	flag.Var(&densities, "density", "Fraction of item types touched per order/corridor (repeatable, sweeps a density grid)")
	name := flag.String("name", "synthetic", "Name prefix for the generated instances")
	count := flag.Int("count", 10, "Number of instances per combination")
	numItems := flag.Int("items", 50, "Number of distinct item types")
	maxQty := flag.Int("maxqty", 10, "Max quantity per item in an order/corridor line")
	waveFrac := flag.Float64("wavefrac", 0.5, "Wave bounds as a fraction band [a,a+0.3] of total order units")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	if len(orderCounts) == 0 {
		orderCounts = wavepick.ArrayIntFlags{20}
	}
	if len(corridorCounts) == 0 {
		corridorCounts = wavepick.ArrayIntFlags{10}
	}
	if len(densities) == 0 {
		densities = wavepick.ArrayFloatFlags{0.15}
	}

	rand.Seed(time.Now().UnixNano())

	for l := 0; l < *count; l++ {
		for _, o := range orderCounts {
			for _, c := range corridorCounts {
				for _, density := range densities {
					inst := generateInstance(*name, o, c, *numItems, *maxQty, density, *waveFrac)
					writeInstance(*outDir, inst, l)
				}
			}
		}
	}
}

func generateInstance(name string, numOrders, numCorridors, numItems, maxQty int, density, waveFrac float64) wavepick.Instance {
	orders := make([]wavepick.ItemQty, numOrders)
	totalUnits := 0
	for o := 0; o < numOrders; o++ {
		m := randomSparseMap(numItems, maxQty, density)
		orders[o] = m
		for _, q := range m {
			totalUnits += q
		}
	}

	corridors := make([]wavepick.ItemQty, numCorridors)
	for c := 0; c < numCorridors; c++ {
		corridors[c] = randomSparseMap(numItems, maxQty*2, density)
	}

	lBound := int(float64(totalUnits) * waveFrac * 0.5)
	uBound := int(float64(totalUnits) * (waveFrac + 0.3))
	if uBound < lBound {
		uBound = lBound
	}

	return wavepick.Instance{
		Name:      fmt.Sprintf("%s_o%d_c%d_d%.2f", name, numOrders, numCorridors, density),
		Orders:    orders,
		Corridors: corridors,
		NumItems:  numItems,
		LBound:    lBound,
		UBound:    uBound,
	}
}

func randomSparseMap(numItems, maxQty int, density float64) wavepick.ItemQty {
	m := make(wavepick.ItemQty)
	for i := 0; i < numItems; i++ {
		if rand.Float64() < density {
			m[i] = 1 + rand.Intn(maxQty)
		}
	}
	return m
}

func writeInstance(dir string, inst wavepick.Instance, sample int) {
	fileName := fmt.Sprintf("%s/%s_%d.json", dir, inst.Name, sample)
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
	jsonInst = []byte(wavepick.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	if err := ioutil.WriteFile(fileName, jsonInst, 0644); err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
	}
}
