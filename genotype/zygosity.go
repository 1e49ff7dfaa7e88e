package genotype

type Zygosity int

const (
	Unknown Zygosity = iota
	Homozygous
	Heterozygous
)

func (z Zygosity) String() string {
	switch z {
	case Homozygous:
		return "homozygous"
	case Heterozygous:
		return "heterozygous"
	default:
		return "unknown"
	}
}
