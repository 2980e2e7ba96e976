/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"git.solver4all.com/azaryc2s/wavepick"
	"git.solver4all.com/azaryc2s/wavepick/engine"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	inputF  *string
	outputF *string
)

func main() {
	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	flag.Parse()

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sys := wavepick.SysInfo{}
	if hostStat != nil {
		sys.Platform = hostStat.Platform
	}
	if len(cpuStat) > 0 {
		sys.CPU = cpuStat[0].ModelName
	}
	if vmStat != nil {
		sys.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	var inst wavepick.Instance
	if err := json.Unmarshal(instStr, &inst); err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	cfg := wavepick.NewConfigFromEnv()
	gurobiEngine := engine.NewGurobiEngine("wavepick-solve.log")

	log.Printf("Solving %s: %d orders, %d corridors, %d item types, wave in [%d,%d]\n",
		*inputF, len(inst.Orders), len(inst.Corridors), inst.NumItems, inst.LBound, inst.UBound)

	sol := wavepick.SolveDetailed(gurobiEngine, inst.Orders, inst.Corridors, inst.NumItems, inst.LBound, inst.UBound, cfg, sys)
	inst.Solution = &sol

	log.Printf("Found a wave with %d orders across %d corridors, ratio %.4f (branch=%s)\n",
		len(sol.Orders), len(sol.Corridors), sol.Ratio, sol.Branch)

	writeSolution(inst)
}

func writeSolution(inst wavepick.Instance) {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(wavepick.SanitizeJsonArrayLineBreaks(string(jsonInst)))

	fileName := *inputF
	if *outputF != "" {
		fileName = *outputF
	}
	if err := ioutil.WriteFile(fileName, jsonInst, 0644); err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
	}
}
