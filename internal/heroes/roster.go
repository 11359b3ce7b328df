package heroes

// Roster is the fixed list of heroes the rotation draws from.
// Defined once at process start and never mutated at runtime.
var Roster = []string{
  "Miya", "Balmond", "Saber", "Alice", "Nana",
  "Tigreal", "Alucard", "Karina", "Akai", "Franco",
  "Bane", "Bruno", "Clint", "Rafaela", "Eudora",
  "Zilong", "Fanny", "Layla", "Minotaur", "Lolita",
  "Hayabusa", "Freya", "Gord", "Natalia", "Kagura",
  "Chou", "Sun", "Alpha", "Ruby", "Yi Sun-shin",
  "Moskov", "Johnson", "Cyclops", "Estes", "Hilda",
  "Aurora", "Lapu-Lapu", "Vexana", "Roger", "Karrie",
  "Gatotkaca", "Harley", "Irithel", "Grock", "Argus",
  "Odette", "Lancelot", "Diggie", "Hylos", "Zhask",
  "Helcurt", "Pharsa", "Lesley", "Jawhead", "Angela",
  "Gusion", "Valir", "Martis", "Uranus", "Hanabi",
  "Chang'e", "Kaja", "Selena", "Aldous", "Claude",
  "Vale", "Leomord", "Lunox", "Hanzo", "Kimmy",
  "Thamuz", "Harith", "Minsitthar", "Kadita", "Faramis",
  "Badang", "Khufra", "Granger", "Guinevere", "Esmeralda",
  "Terizla", "X.Borg", "Ling", "Dyrroth", "Lylia",
  "Baxia", "Masha", "Wanwan", "Silvanna", "Cecilion",
  "Carmilla", "Atlas", "Popol and Kupa", "Yu Zhong", "Luo Yi",
  "Benedetta", "Khaleed", "Barats", "Brody", "Yve",
  "Mathilda", "Paquito", "Gloo", "Beatrix", "Phoveus",
  "Natan", "Aulus", "Aamon", "Valentina", "Edith",
  "Yin", "Melissa", "Xavier", "Julian", "Fredrinn",
  "Joy", "Novaria", "Arlott", "Ixia", "Nolan",
}

func Contains(hero string) bool {
  for _, h := range Roster {
    if h == hero {
      return true
    }
  }
  return false
}
