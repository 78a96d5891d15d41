package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// command runs one RPC subcommand.
type command func(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error

var commands = map[string]command{
	"validate":    cmdValidate,
	"limit":       cmdLimit,
	"invite-code": cmdInviteCode,
	"verify-code": cmdVerifyCode,
	"link-send":   cmdLinkSend,
	"link-accept": cmdLinkAccept,
	"link-reject": cmdLinkReject,
	"badge":       cmdBadge,
	"reveal":      cmdReveal,
	"premium":     cmdPremium,
	"purchase":    cmdPurchase,
}

// run executes the RPC subcommand name and prints its response as JSON.
func run(ctx context.Context, cli pb.DareGuardClient, name string, args []string, w io.Writer) error {
	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return c(ctx, cli, fs, args, w)
}

func cmdValidate(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	text := fs.String("text", "", "dare text")
	file := fs.String("file", "", "read dare text from file ('-'=stdin)")
	custom := fs.Bool("custom", false, "user-written dare")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *text == "" && *file != "" {
		b, err := readAll(*file)
		if err != nil {
			return err
		}
		*text = strings.TrimRight(string(b), "\n")
	}
	if *text == "" {
		return errors.New("need -text or -file")
	}
	out, err := cli.ValidateDare(ctx, &pb.ValidateDareRequest{DareText: *text, IsCustom: *custom})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdLimit(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := cli.CheckDareRateLimit(ctx, &pb.CheckDareRateLimitRequest{})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdInviteCode(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := cli.GenerateInviteCode(ctx, &pb.GenerateInviteCodeRequest{})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdVerifyCode(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	code := fs.String("code", "", "partner's invite code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *code == "" {
		return errors.New("need -code")
	}
	out, err := cli.VerifyInviteCode(ctx, &pb.VerifyInviteCodeRequest{InviteCode: *code})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdLinkSend(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	partner := fs.String("partner", "", "partner user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *partner == "" {
		return errors.New("need -partner")
	}
	out, err := cli.SendPartnerLinkRequest(ctx, &pb.SendPartnerLinkRequestRequest{PartnerId: *partner})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdLinkAccept(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	req := fs.String("request", "", "link request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *req == "" {
		return errors.New("need -request")
	}
	out, err := cli.AcceptPartnerLinkRequest(ctx, &pb.AcceptPartnerLinkRequestRequest{RequestId: *req})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdLinkReject(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	req := fs.String("request", "", "link request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *req == "" {
		return errors.New("need -request")
	}
	out, err := cli.RejectPartnerLinkRequest(ctx, &pb.RejectPartnerLinkRequestRequest{RequestId: *req})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdBadge(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	id := fs.String("id", "", "badge id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("need -id")
	}
	out, err := cli.AwardBadgeBonus(ctx, &pb.AwardBadgeBonusRequest{BadgeId: *id})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

func cmdReveal(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	comp := fs.String("competition", "", "competition id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *comp == "" {
		return errors.New("need -competition")
	}
	out, err := cli.RevealPartnerPrize(ctx, &pb.RevealPartnerPrizeRequest{CompetitionId: *comp})
	if err != nil {
		return err
	}
	printJSON(w, out)
	return nil
}

// premiumView renders expiry as RFC 3339.
type premiumView struct {
	IsPremium     bool   `json:"isPremium"`
	Tier          string `json:"tier"`
	ExpiresAt     string `json:"expiresAt,omitempty"`
	DaysRemaining int32  `json:"daysRemaining"`
	Expired       bool   `json:"expired,omitempty"`
	Message       string `json:"message,omitempty"`
}

func cmdPremium(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := cli.CheckPremiumStatus(ctx, &pb.CheckPremiumStatusRequest{})
	if err != nil {
		return err
	}
	printJSON(w, premiumView{
		IsPremium:     out.IsPremium,
		Tier:          out.Tier,
		ExpiresAt:     tsString(out.ExpiresAt),
		DaysRemaining: out.DaysRemaining,
		Expired:       out.Expired,
		Message:       out.Message,
	})
	return nil
}

func cmdPurchase(ctx context.Context, cli pb.DareGuardClient, fs *flag.FlagSet, args []string, w io.Writer) error {
	token := fs.String("token", "", "store purchase token")
	product := fs.String("product", "", "product id")
	pkg := fs.String("package", "", "app package name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" || *product == "" || *pkg == "" {
		return errors.New("need -token -product -package")
	}
	out, err := cli.VerifyPurchase(ctx, &pb.VerifyPurchaseRequest{PurchaseToken: *token, ProductId: *product, PackageName: *pkg})
	if err != nil {
		return err
	}
	printJSON(w, premiumView{
		IsPremium: out.Success,
		Tier:      out.PremiumTier,
		ExpiresAt: tsString(out.ExpiresAt),
		Message:   out.Message,
	})
	return nil
}

func tsString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339)
}
