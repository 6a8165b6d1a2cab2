package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/config"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/simulation"
)

// Dumps the daily cash flow schedule the engine would walk for a
// configuration, one CSV row per day. Handy when checking how a deposit
// frequency lands on real calendar months.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_schedule <config-file> [days]")
		return
	}
	days := 92
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			panic(err)
		}
		days = n
	}

	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	input := cfg.ToSimulationInput()

	calendar := simulation.GenerateCalendar(input.StartDate, days)
	fmt.Println("Index,Date,MonthEnd,Deposit,Withdrawal,Extra")
	for _, day := range calendar {
		deposit := simulation.DepositOn(day, input.CashFlow.MonthlyIncome, input.CashFlow.DepositFrequency)
		withdrawal := simulation.WithdrawalOn(day, input.CashFlow.MonthlyExpenses)
		extra := simulation.ExtraPrincipalOn(day, input.ExtraMonthlyPrincipal)
		fmt.Printf("%d,%s,%t,%s,%s,%s\n", day.Index, day.Date, day.IsMonthEnd,
			deposit.StringFixed(2), withdrawal.StringFixed(2), extra.StringFixed(2))
	}
}
