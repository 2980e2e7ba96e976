package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/wavepick"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", dirName, err.Error())
		return
	}

	fmt.Printf("Name,Ratio,TotalItems,Orders,Corridors,Branch,Time,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst := wavepick.Instance{}
		instStr, err := ioutil.ReadFile(fileName)
		if err != nil {
			log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
			continue
		}
		if err := json.Unmarshal(instStr, &inst); err != nil {
			log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
			continue
		}

		var sol wavepick.ChallengeSolution
		if inst.Solution != nil {
			sol = *inst.Solution
		}
		fmt.Printf("%s,%.4f,%d,%d,%d,%s,%s,%s\n",
			inst.Name, sol.Ratio, sol.TotalItems, len(sol.Orders), len(sol.Corridors), sol.Branch, sol.Time, sol.Comment)
	}
}
