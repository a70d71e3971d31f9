package radixblitz

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Bumped whenever the layout of LocalData changes. A file carrying any
// other version is reseeded rather than guessed at.
const localDataVersion = 1

type Options struct {
	Music      bool
	Fullscreen bool
}

type LocalData struct {
	Version     int
	Leaderboard [5]int
	BestEver    int
	Options     Options
}

// ReadLocalData loads persisted state from path. A missing, corrupt or
// unversioned file yields a freshly seeded board; first boot never runs
// against undefined storage contents.
func ReadLocalData(path string) *LocalData {
	persistent := &LocalData{}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		data = []byte{}
	}

	err = yaml.Unmarshal(data, persistent)
	if err != nil {
		fmt.Printf("[Boot] error loading persistent data: %v\n", err)
		persistent = &LocalData{}
	}

	if persistent.Version != localDataVersion {
		persistent.seed()
	}

	return persistent
}

func (data *LocalData) seed() {
	data.Version = localDataVersion
	data.Leaderboard = defaultScores
	data.BestEver = defaultScores[0]
	data.Options = Options{Music: true}
}

func (data *LocalData) WriteToFile(path string) {
	yml, err := yaml.Marshal(&data)
	if err != nil {
		log.Fatalf("[persistence] error: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("[persistence] error writing data: %v", err)
	}
	defer f.Close()
	f.Write(yml)
}
